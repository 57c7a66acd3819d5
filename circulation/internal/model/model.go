package model

import (
	"time"
)

// StatusName is a well-known entry of the asset status taxonomy.
type StatusName string

type Status struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Asset struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	StatusID int    `json:"statusId" db:"status_id"`
	Status   string `json:"status" db:"status"`
}

type Card struct {
	ID      int64     `json:"id" db:"id"`
	Created time.Time `json:"created" db:"created"`
}

type Patron struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	CardID    int64  `json:"cardId" db:"card_id"`
}

type Checkout struct {
	ID      int64     `json:"id" db:"id"`
	AssetID int64     `json:"assetId" db:"asset_id"`
	CardID  int64     `json:"cardId" db:"card_id"`
	Since   time.Time `json:"since" db:"since"`
	Until   time.Time `json:"until" db:"until"`
}

type CheckoutHistory struct {
	ID         int64      `json:"id" db:"id"`
	AssetID    int64      `json:"assetId" db:"asset_id"`
	CardID     int64      `json:"cardId" db:"card_id"`
	CheckedOut time.Time  `json:"checkedOut" db:"checked_out"`
	CheckedIn  *time.Time `json:"checkedIn" db:"checked_in"`
}

type Hold struct {
	ID         int64     `json:"id" db:"id"`
	AssetID    int64     `json:"assetId" db:"asset_id"`
	CardID     int64     `json:"cardId" db:"card_id"`
	HoldPlaced time.Time `json:"holdPlaced" db:"hold_placed"`
}

type CheckInResult struct {
	PromotedHold bool      `json:"promotedHold"`
	Hold         *Hold     `json:"hold,omitempty"`
	Checkout     *Checkout `json:"checkout,omitempty"`
}

// Bounds of PageRequest; they keep the row offset far from overflow.
const (
	MaxPage     = 1_000_000
	MaxPageSize = 1_000
)

// PageRequest selects a 1-based page; a zero Page or Size selects everything.
type PageRequest struct {
	Page int `json:"page" query:"page" validate:"gte=0,lte=1000000"`
	Size int `json:"size" query:"size" validate:"gte=0,lte=1000"`
}

func (p PageRequest) All() bool {
	return p.Page == 0 || p.Size == 0
}

func (p PageRequest) Valid() bool {
	return p.Page >= 0 && p.Page <= MaxPage && p.Size >= 0 && p.Size <= MaxPageSize
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Page[T any] struct {
	Paging `json:",inline"`
	Items  []T `json:"items"`
}

type CheckOutRequest struct {
	CardID int64 `json:"cardId" validate:"required,gt=0"`
}

type PlaceHoldRequest struct {
	CardID int64 `json:"cardId" validate:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
