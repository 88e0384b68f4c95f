/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidBookRef = errors.New("invalid book reference: must be a JSON string or integer")

// BookType is the catalog classification of a book.
type BookType string

const (
	BookTypeFiction    BookType = "fiction"
	BookTypeNonFiction BookType = "non-fiction"
)

// Status is returned by the status endpoint.
type Status struct {
	Status string `json:"status"`
}

// Book is a catalog entry. The list endpoint only populates the first
// four fields, the single book endpoint populates all of them.
type Book struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Type         BookType `json:"type"`
	Available    bool     `json:"available"`
	Author       string   `json:"author,omitempty"`
	ISBN         string   `json:"isbn,omitempty"`
	Price        float64  `json:"price,omitempty"`
	CurrentStock int      `json:"current-stock,omitempty"`
}

// BookFilter narrows a book listing.
type BookFilter struct {
	Limit *int
	Type  *BookType
}

// BookRef is a book identifier as it appears in order payloads.  Requests
// send it as a string, the service may echo it back as a number.
type BookRef string

func (r *BookRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*r = BookRef(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidBookRef
	}

	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return ErrInvalidBookRef
	}

	*r = BookRef(n.String())

	return nil
}

// OrderRequest is the body of an order creation.
type OrderRequest struct {
	BookID       BookRef `json:"bookId"`
	CustomerName string  `json:"customerName"`
}

// OrderUpdate is the body of an order patch.
type OrderUpdate struct {
	CustomerName string `json:"customerName"`
}

// OrderCreated is returned by a successful order creation.
type OrderCreated struct {
	Created bool    `json:"created"`
	OrderID *string `json:"orderId"`
}

// Order is an order as read back from the service.
type Order struct {
	ID           string  `json:"id"`
	BookID       BookRef `json:"bookId"`
	CustomerName string  `json:"customerName"`
	CreatedBy    string  `json:"createdBy,omitempty"`
	Quantity     int     `json:"quantity,omitempty"`
	Timestamp    int64   `json:"timestamp,omitempty"`
}

// APIError is the body the service returns alongside 4xx responses.
type APIError struct {
	Error string `json:"error"`
}
