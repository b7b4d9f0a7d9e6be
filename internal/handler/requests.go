package handler

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
}

// CreateCharacterRequest is the body of POST /characters.
type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,max=30"`
}

// LineItemRequest is one element of a purchase or sale body.
type LineItemRequest struct {
	ItemCode int `json:"item_code" validate:"required,gt=0,lte=2147483647"`
	Count    int `json:"count" validate:"required,gt=0,lte=1000000"`
}

// EquipRequest is the body of equip and unequip.
type EquipRequest struct {
	ItemCode int `json:"item_code" validate:"required,gt=0,lte=2147483647"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	ItemCode  int            `json:"item_code" validate:"required,gt=0,lte=2147483647"`
	ItemName  string         `json:"item_name" validate:"required,max=100"`
	ItemStat  map[string]int `json:"item_stat" validate:"omitempty,dive,keys,stat,endkeys,gte=-2147483647,lte=2147483647"`
	ItemPrice *int           `json:"item_price" validate:"required,gte=0,lte=2147483647"`
}

// UpdateItemRequest is the body of PUT /items/{itemCode}. ItemPrice is
// accepted only so a price change can be rejected with a clear error.
type UpdateItemRequest struct {
	ItemName  *string        `json:"item_name" validate:"omitempty,min=1,max=100"`
	ItemStat  map[string]int `json:"item_stat" validate:"omitempty,dive,keys,stat,endkeys,gte=-2147483647,lte=2147483647"`
	ItemPrice *int           `json:"item_price"`
}

// CharacterCreatedResponse is the payload of a successful creation.
type CharacterCreatedResponse struct {
	CharacterID int64 `json:"character_id"`
}
