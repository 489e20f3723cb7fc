package schema

// FeedbackTableDef represents the 'public.feedback' table
type FeedbackTableDef struct {
	Table          string
	ID             string
	CustomerName   string
	Rating         string
	HappinessLevel string
	Message        string
	CreatedAt      string
	UpdatedAt      string
}

// FeedbackTable is the schema definition for public.feedback
var FeedbackTable = FeedbackTableDef{
	Table:          "feedback",
	ID:             "id",
	CustomerName:   "customer_name",
	Rating:         "rating",
	HappinessLevel: "happiness_level",
	Message:        "message",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

func (t FeedbackTableDef) Columns() []string {
	return []string{t.ID, t.CustomerName, t.Rating, t.HappinessLevel, t.Message, t.CreatedAt, t.UpdatedAt}
}
