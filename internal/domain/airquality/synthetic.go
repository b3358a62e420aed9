package airquality

import "math"

// Synthetic data keeps the dashboard alive when the provider is down. The
// values are plausible rather than accurate: a coarse urban bounding box sets
// the baseline, commute hours push it up, night hours pull it down.

func (s *service) syntheticSnapshot(lat, lon float64) Snapshot {
	isUrban := lon > 75 && lon < 85 && lat > 15 && lat < 20
	hour := s.now().Hour()
	isRushHour := (hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 20)

	baseAQI := 80.0
	if isUrban {
		baseAQI = 120.0
	}
	if isRushHour {
		baseAQI += 30
	}
	if hour >= 22 || hour <= 5 {
		baseAQI -= 20
	}

	jitter := s.randFn()*40 - 20
	aqi := clampInt(int(baseAQI+jitter+0.5), 20, 300)

	return Snapshot{
		AQI:       aqi,
		Category:  CategoryFor(aqi),
		PM25:      float64(aqi)*0.5 + s.randFn()*20,
		PM10:      float64(aqi)*0.8 + s.randFn()*30,
		NO2:       15 + s.randFn()*30,
		SO2:       5 + s.randFn()*15,
		CO:        200 + s.randFn()*300,
		O3:        30 + s.randFn()*40,
		Source:    SourceSynthetic,
		Timestamp: s.now().UTC(),
	}
}

func (s *service) syntheticSeries() Series {
	baseAQI := 80 + s.randFn()*80
	series := make(Series, 0, SeriesLength)
	for i := 1; i <= SeriesLength; i++ {
		variation := math.Sin(float64(i)*0.5)*20 + (s.randFn()*10 - 5)
		series = append(series, clampInt(int(baseAQI+variation+0.5), 30, 250))
	}
	return series
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
