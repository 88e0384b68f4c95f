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

// Package bookstoretest provides an in-memory stand in for the Simple Books
// API so the test harness itself can be exercised without network access.
// It deliberately shares no types with package api.
package bookstoretest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxLimit = 20

	typeFiction    = "fiction"
	typeNonFiction = "non-fiction"
)

type book struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Author       string  `json:"author"`
	ISBN         string  `json:"isbn"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	CurrentStock int     `json:"current-stock"`
	Available    bool    `json:"available"`
}

type bookSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}

// Order is an order held by the fake.
type Order struct {
	ID           string `json:"id"`
	BookID       int    `json:"bookId"`
	CustomerName string `json:"customerName"`
	CreatedBy    string `json:"createdBy"`
	Quantity     int    `json:"quantity"`
	Timestamp    int64  `json:"timestamp"`
}

//nolint:gochecknoglobals
var catalog = []book{
	{ID: 1, Name: "The Russian", Author: "James Patterson and James O. Born", ISBN: "1780899475", Type: typeFiction, Price: 12.98, CurrentStock: 12, Available: true},
	{ID: 2, Name: "Just as I Am", Author: "Cicely Tyson", ISBN: "0062931083", Type: typeNonFiction, Price: 20.33, CurrentStock: 0, Available: false},
	{ID: 3, Name: "The Vanishing Half", Author: "Brit Bennett", ISBN: "0525536299", Type: typeFiction, Price: 16.20, CurrentStock: 987, Available: true},
	{ID: 4, Name: "The Midnight Library", Author: "Matt Haig", ISBN: "0525559477", Type: typeFiction, Price: 15.60, CurrentStock: 87, Available: true},
	{ID: 5, Name: "Untamed", Author: "Glennon Doyle", ISBN: "1984801252", Type: typeNonFiction, Price: 14.79, CurrentStock: 24, Available: true},
	{ID: 6, Name: "Viscount Who Loved Me", Author: "Julia Quinn", ISBN: "0063102068", Type: typeFiction, Price: 9.99, CurrentStock: 43, Available: true},
}

// Titles returns the names of every book in the catalog.
func Titles() []string {
	titles := make([]string, len(catalog))

	for i := range catalog {
		titles[i] = catalog[i].Name
	}

	return titles
}

// Server is a running fake bookstore.
type Server struct {
	*httptest.Server

	lock sync.Mutex
	// clients maps bearer tokens to the client identifier recorded as createdBy.
	clients map[string]string
	orders  []*Order
}

type clientKey struct{}

// NewServer starts a fake bookstore accepting the given bearer tokens.  It is
// closed when the test ends.
func NewServer(t testing.TB, tokens ...string) *Server {
	t.Helper()

	s := &Server{
		clients: map[string]string{},
	}

	for _, token := range tokens {
		s.clients[token] = uuid.NewString()
	}

	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) router() http.Handler {
	router := chi.NewRouter()

	router.Get("/status", s.status)
	router.Get("/books", s.listBooks)
	router.Get("/books/{bookId}", s.getBook)

	router.Route("/orders", func(r chi.Router) {
		r.Use(s.authenticate)
		r.Get("/", s.listOrders)
		r.Post("/", s.createOrder)
		r.Get("/{orderId}", s.getOrder)
		r.Patch("/{orderId}", s.updateOrder)
		r.Delete("/{orderId}", s.deleteOrder)
	})

	return router
}

// Order returns a copy of the order with the given identifier.
func (s *Server) Order(orderID string) (Order, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, order := range s.orders {
		if order.ID == orderID {
			return *order, true
		}
	}

	return Order{}, false
}

// OrderCount returns the number of live orders across all clients.
func (s *Server) OrderCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.orders)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "Missing Authorization header.")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid bearer token.")
			return
		}

		s.lock.Lock()
		clientID, ok := s.clients[token]
		s.lock.Unlock()

		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid bearer token.")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientKey{}, clientID)))
	})
}

func clientFromRequest(r *http.Request) string {
	//nolint:forcetypeassert // set by authenticate
	return r.Context().Value(clientKey{}).(string)
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	limit := maxLimit

	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 || parsed > maxLimit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid value for query parameter 'limit'. Must be between 1 and %d.", maxLimit))
			return
		}

		limit = parsed
	}

	bookType := r.URL.Query().Get("type")
	if bookType != "" && bookType != typeFiction && bookType != typeNonFiction {
		writeError(w, http.StatusBadRequest, "Invalid value for query parameter 'type'. Must be one of: fiction, non-fiction.")
		return
	}

	books := []bookSummary{}

	for _, b := range catalog {
		if len(books) == limit {
			break
		}

		if bookType != "" && b.Type != bookType {
			continue
		}

		books = append(books, bookSummary{
			ID:        b.ID,
			Name:      b.Name,
			Type:      b.Type,
			Available: b.Available,
		})
	}

	writeJSON(w, http.StatusOK, books)
}

func lookupBook(bookID int) (book, bool) {
	for _, b := range catalog {
		if b.ID == bookID {
			return b, true
		}
	}

	return book{}, false
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "bookId")

	bookID, err := strconv.Atoi(param)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("No book with id %s", param))
		return
	}

	b, ok := lookupBook(bookID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("No book with id %d", bookID))
		return
	}

	writeJSON(w, http.StatusOK, b)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	clientID := clientFromRequest(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	orders := []Order{}

	for _, order := range s.orders {
		if order.CreatedBy == clientID {
			orders = append(orders, *order)
		}
	}

	writeJSON(w, http.StatusOK, orders)
}

// parseBookID accepts a book identifier encoded as a JSON string or number.
func parseBookID(raw json.RawMessage) (int, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		id, err := strconv.Atoi(s)
		return id, err == nil
	}

	var id int
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, false
	}

	return id, true
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var request struct {
		BookID       json.RawMessage `json:"bookId"`
		CustomerName string          `json:"customerName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	bookID, ok := parseBookID(request.BookID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid or missing bookId.")
		return
	}

	b, ok := lookupBook(bookID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid or missing bookId.")
		return
	}

	if !b.Available {
		writeError(w, http.StatusNotFound, "This book is not in stock. Try again later.")
		return
	}

	if request.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "Invalid or missing customerName.")
		return
	}

	order := &Order{
		ID:           uuid.NewString(),
		BookID:       bookID,
		CustomerName: request.CustomerName,
		CreatedBy:    clientFromRequest(r),
		Quantity:     1,
		Timestamp:    time.Now().UnixMilli(),
	}

	s.lock.Lock()
	s.orders = append(s.orders, order)
	s.lock.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"created": true,
		"orderId": order.ID,
	})
}

// findOrder returns the index of the caller's order, or -1.  The lock must be held.
func (s *Server) findOrder(r *http.Request) int {
	orderID := chi.URLParam(r, "orderId")
	clientID := clientFromRequest(r)

	for i, order := range s.orders {
		if order.ID == orderID && order.CreatedBy == clientID {
			return i
		}
	}

	return -1
}

func writeOrderNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("No order with id %s.", chi.URLParam(r, "orderId")))
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	i := s.findOrder(r)
	if i < 0 {
		writeOrderNotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, s.orders[i])
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	var request struct {
		CustomerName string `json:"customerName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "Invalid or missing customerName.")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	i := s.findOrder(r)
	if i < 0 {
		writeOrderNotFound(w, r)
		return
	}

	s.orders[i].CustomerName = request.CustomerName

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	i := s.findOrder(r)
	if i < 0 {
		writeOrderNotFound(w, r)
		return
	}

	s.orders = append(s.orders[:i], s.orders[i+1:]...)

	w.WriteHeader(http.StatusNoContent)
}
