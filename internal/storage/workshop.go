package storage

type Workshop struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	WorkshopTypeID  int64  `json:"workshop_type_id"`
	WorkersRequired int    `json:"workers_required"`
}

type SaveWorkshop struct {
	Name            string `json:"name"`
	WorkshopTypeID  int64  `json:"workshop_type_id"`
	WorkersRequired int    `json:"workers_required"`
}

// UpdateWorkshop — частичное обновление, nil-поля не трогаем.
type UpdateWorkshop struct {
	Name            *string `json:"name,omitempty"`
	WorkshopTypeID  *int64  `json:"workshop_type_id,omitempty"`
	WorkersRequired *int    `json:"workers_required,omitempty"`
}
