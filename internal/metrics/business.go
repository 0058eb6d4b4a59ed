package metrics

import "media-catalog-api/internal/dto"

// IncrementEntityCreated counts a created catalog entity
func (m *Metrics) IncrementEntityCreated(entity string) {
	m.safeExecute("IncrementEntityCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entity).Inc()
	})
}

// SetCatalogStats publishes the row counts of every catalog table
func (m *Metrics) SetCatalogStats(stats *dto.CatalogStats) {
	m.safeExecute("SetCatalogStats", func() {
		m.EntitiesTotal.WithLabelValues("category").Set(float64(stats.Categories))
		m.EntitiesTotal.WithLabelValues("artwork").Set(float64(stats.Artworks))
		m.EntitiesTotal.WithLabelValues("user").Set(float64(stats.Users))
		m.EntitiesTotal.WithLabelValues("comment").Set(float64(stats.Comments))
		m.EntitiesTotal.WithLabelValues("review").Set(float64(stats.Reviews))
		m.EntitiesTotal.WithLabelValues("tag").Set(float64(stats.Tags))
	})
}

// RecordStatsRefresh counts a statistics refresh run by outcome
func (m *Metrics) RecordStatsRefresh(err error) {
	m.safeExecute("RecordStatsRefresh", func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		m.StatsRefreshTotal.WithLabelValues(result).Inc()
	})
}
