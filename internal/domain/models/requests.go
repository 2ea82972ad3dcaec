package models

// Requests for the read endpoints. Defined in domain for consistency and reuse.

type RegionsRequest struct {
	Granularity string `query:"granularity" json:"granularity" validate:"required,oneof=national state metro county zip"`
}

type RegionMetricsRequest struct {
	Granularity string `param:"granularity" json:"granularity" validate:"required,oneof=national state metro county zip"`
	Region      string `param:"region" json:"region" validate:"required"`
}

type AffordabilityMetricsRequest struct {
	Region string `param:"region" json:"region" validate:"required"`
}
