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
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Health endpoints.
func (e *Endpoints) Status() string {
	return "/status"
}

// Catalog endpoints.
func (e *Endpoints) ListBooks() string {
	return "/books"
}

func (e *Endpoints) GetBook(bookID int) string {
	return "/books/" + strconv.Itoa(bookID)
}

// Order endpoints.
func (e *Endpoints) ListOrders() string {
	return "/orders"
}

func (e *Endpoints) CreateOrder() string {
	return "/orders"
}

func (e *Endpoints) GetOrder(orderID string) string {
	return fmt.Sprintf("/orders/%s", url.PathEscape(orderID))
}

func (e *Endpoints) UpdateOrder(orderID string) string {
	return fmt.Sprintf("/orders/%s", url.PathEscape(orderID))
}

func (e *Endpoints) DeleteOrder(orderID string) string {
	return fmt.Sprintf("/orders/%s", url.PathEscape(orderID))
}
