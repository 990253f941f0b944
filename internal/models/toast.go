package models

const (
	TOAST_VARIANT_DEFAULT     = "default"
	TOAST_VARIANT_DESTRUCTIVE = "destructive"
)

type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

func (t *Toast) Destructive() bool {
	return t.Variant == TOAST_VARIANT_DESTRUCTIVE
}
