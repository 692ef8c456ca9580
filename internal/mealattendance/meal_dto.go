package mealattendance

type MarkMealRequest struct {
	Date      string    `json:"date" binding:"required"`
	Breakfast *FlexBool `json:"breakfast"`
	Lunch     *FlexBool `json:"lunch"`
	Dinner    *FlexBool `json:"dinner"`
}

type MealAttendanceResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	Breakfast bool   `json:"breakfast"`
	Lunch     bool   `json:"lunch"`
	Dinner    bool   `json:"dinner"`
}

// DinerSummary is the identity payload shown to the kitchen: one entry per
// user per meal list.
type DinerSummary struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Contact      string  `json:"contact,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type DailyStatsResponse struct {
	Date      string         `json:"date,omitempty"`
	Breakfast []DinerSummary `json:"breakfast"`
	Lunch     []DinerSummary `json:"lunch"`
	Dinner    []DinerSummary `json:"dinner"`
}
