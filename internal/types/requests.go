package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Quantity accepts either a JSON string ("2 packs") or a number (2). null leaves
// it empty so a missing quantity is still caught.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*q = Quantity(strconv.FormatFloat(num, 'f', -1, 64))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*q = Quantity(str)
		return nil
	}

	return fmt.Errorf("invalid quantity format")
}

// CredentialsRequest is the body of /signup and /login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddFoodRequest is the body of /addfood. Expiry is DD/MM/YYYY or YYYY-MM-DD.
type AddFoodRequest struct {
	Name      string                 `json:"name"`
	Expiry    string                 `json:"expiry"`
	Quantity  Quantity               `json:"quantity"`
	Location  string                 `json:"location"`
	Nutrients map[string]interface{} `json:"nutrients"`
	ImageURL  *string                `json:"image_url"`
}

// GenerateRecipesRequest is the body of /generateRecipes.
type GenerateRecipesRequest struct {
	Ingredients []string `json:"ingredients"`
	Count       int      `json:"count"`
}

// ImageUploadRequest asks for a presigned URL to upload an item photo.
type ImageUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// ImageUploadResponse carries the URL to PUT the image to and the key to store.
type ImageUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int    `json:"expires_in"`
}
