package response

type AnalyticsResponse struct {
	TotalUsers      int64            `json:"total_users"`
	TotalVendors    int64            `json:"total_vendors"`
	VendorsByStatus map[string]int64 `json:"vendors_by_status"`
	TotalReviews    int64            `json:"total_reviews"`
	ReviewsByStatus map[string]int64 `json:"reviews_by_status"`
	AverageRating   float64          `json:"average_rating"`
	TotalCategories int64            `json:"total_categories"`
	ActivePolls     int64            `json:"active_polls"`
}

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
