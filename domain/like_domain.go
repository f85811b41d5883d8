package domain

import (
	"errors"
)

var (
	MessageSuccessLikeItem      = "item liked successfully"
	MessageSuccessUnlikeItem    = "item unliked successfully"
	MessageSuccessGetLikedItems = "liked items retrieved successfully"

	MessageFailedLikeItem      = "failed to like item"
	MessageFailedUnlikeItem    = "failed to unlike item"
	MessageFailedGetLikedItems = "failed to retrieve liked items"

	ErrAlreadyLiked = errors.New("item already liked")
	ErrLikeNotFound = errors.New("liked item not found")
)

type (
	LikeItemRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
	}

	LikedItemResponse struct {
		ID   string       `json:"id"`
		Item ItemResponse `json:"item"`
	}
)
