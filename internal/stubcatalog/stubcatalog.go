// Package stubcatalog is an in-memory reference implementation of the
// catalog service's REST contract. The harness uses it to test itself: the
// suites run against this stub in go test, with no real service or database.
// It is not the service under test and never ships to users.
package stubcatalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"

	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Product Catalog Administration</title></head>
<body><h1>Product Catalog Administration</h1></body>
</html>
`

// Server holds the in-memory product store.
type Server struct {
	mu       sync.Mutex
	nextID   int
	products []catalog.Product
}

func New() *Server {
	return &Server{nextID: 1}
}

// Handler returns the HTTP handler for the stub service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
	}))

	r.Get("/", s.index)
	r.Get("/health", s.health)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.With(requireJSON).Post("/", s.createProduct)
		r.Get("/{id}", s.getProduct)
		r.With(requireJSON).Put("/{id}", s.updateProduct)
		r.Delete("/{id}", s.deleteProduct)
	})
	return r
}

// requireJSON rejects writes whose content type is not JSON.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/json") {
			writeMessage(w, http.StatusUnsupportedMediaType,
				fmt.Sprintf("Content-Type must be application/json, got %q", ct))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "OK")
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	product.ID = s.nextID
	s.nextID++
	s.products = append(s.products, product)
	s.mu.Unlock()

	w.Header().Set("Location", fmt.Sprintf("/products/%d", product.ID))
	writeJSON(w, http.StatusCreated, product)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	product, found := s.find(id)
	s.mu.Unlock()
	if !found {
		writeNotFound(w, id)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			product.ID = id
			s.products[i] = product
			writeJSON(w, http.StatusOK, product)
			return
		}
	}
	writeNotFound(w, id)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	// deleting an absent product is not an error
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var wantAvailable *bool
	if token := query.Get("available"); token != "" {
		parsed, err := parseBoolToken(token)
		if err != nil {
			writeMessage(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid boolean value for available: %q", token))
			return
		}
		wantAvailable = &parsed
	}

	s.mu.Lock()
	matched := make([]catalog.Product, 0)
	for _, p := range s.products {
		if name := query.Get("name"); name != "" && p.Name != name {
			continue
		}
		if category := query.Get("category"); category != "" && string(p.Category) != category {
			continue
		}
		if wantAvailable != nil && p.Available != *wantAvailable {
			continue
		}
		matched = append(matched, p)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, matched)
}

func (s *Server) find(id int) (catalog.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func parseBoolToken(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", token)
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Product id must be an integer")
		return 0, false
	}
	return id, true
}

// decodeProduct parses and validates a product payload, writing a 400
// response and returning ok=false when the payload is unusable.
func decodeProduct(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product: malformed JSON")
		return catalog.Product{}, false
	}

	var product catalog.Product
	if nameData, ok := raw["name"]; !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid product: missing name")
		return catalog.Product{}, false
	} else if err := json.Unmarshal(nameData, &product.Name); err != nil || product.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid product: missing name")
		return catalog.Product{}, false
	}
	if data, ok := raw["description"]; ok {
		if err := json.Unmarshal(data, &product.Description); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid product: bad description")
			return catalog.Product{}, false
		}
	}
	if data, ok := raw["price"]; ok {
		var price decimal.Decimal
		if err := json.Unmarshal(data, &price); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid product: price is not a number")
			return catalog.Product{}, false
		}
		product.Price = price
	}
	if data, ok := raw["available"]; ok {
		if err := json.Unmarshal(data, &product.Available); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid product: available is not a boolean")
			return catalog.Product{}, false
		}
	}
	if data, ok := raw["category"]; ok {
		if err := json.Unmarshal(data, &product.Category); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid product: bad category")
			return catalog.Product{}, false
		}
	}
	return product, true
}

func writeNotFound(w http.ResponseWriter, id int) {
	writeMessage(w, http.StatusNotFound,
		fmt.Sprintf("Product with id '%d' was not found.", id))
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
