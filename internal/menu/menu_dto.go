package menu

type UpsertMenuRequest struct {
	Date      string `json:"date" binding:"required"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type MenuResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

func mapToResponse(m *Menu) MenuResponse {
	return MenuResponse{
		ID:        m.ID.String(),
		Date:      m.Date.Format("2006-01-02"),
		Breakfast: m.Breakfast,
		Lunch:     m.Lunch,
		Dinner:    m.Dinner,
	}
}
