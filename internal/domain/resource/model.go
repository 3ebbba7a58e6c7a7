package resource

// Resource types the dashboard renders with dedicated icons.
const (
	TypePDF      = "pdf"
	TypeVideo    = "video"
	TypeDocument = "document"
	TypeLink     = "link"
)

// Resource maps to the resources table (patient education material).
type Resource struct {
	ID           int64  `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Description  string `db:"description" json:"description"`
	ResourceType string `db:"resource_type" json:"resource_type"`
	URL          string `db:"url" json:"url"`
	Icon         string `db:"icon" json:"icon"`
}
