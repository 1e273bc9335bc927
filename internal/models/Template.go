package models

// RoleRecord is a role from the template's serialized guild. Color is a
// packed 0xRRGGBB value; 0 means the role has no color of its own.
type RoleRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color int64  `json:"color"`
}

// ChannelRecord is a channel exactly as the template lists it: flat, with a
// parent reference instead of nesting.
type ChannelRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId"`
	Position int64  `json:"position"`
}

// Template is a validated template payload.
type Template struct {
	Code        string
	Name        string
	Description string
	Roles       []RoleRecord
	Channels    []ChannelRecord
}

// TemplateResult is everything a presenter needs to draw one template.
type TemplateResult struct {
	Code        string         `json:"code,omitempty"`
	Name        string         `json:"templateName"`
	Description string         `json:"description,omitempty"`
	Roles       []RoleRecord   `json:"roles"`
	Channels    []*ChannelNode `json:"channels"`
}
