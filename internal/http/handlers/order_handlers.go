package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	repo "github.com/muhammaduss/Warehold/internal/repo"
)

// PlaceOrderHandler godoc
// @Summary Place a new order
// @Description Validates every requested line against current stock and
// @Description either commits the whole order or rejects it as a unit.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lines body []OrderLineRequest true "Requested line items"
// @Success 201 {object} OrderViewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} MessageResponse "Unknown product title"
// @Failure 409 {object} MessageResponse "Insufficient stock"
// @Router /orders [post]
func PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req []OrderLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrderLines(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	lines := make([]repo.LineRequest, len(req))
	for i, line := range req {
		lines[i] = repo.LineRequest{Title: line.Title, Count: line.Count}
	}

	view, err := orderEngine.Place(lines)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeMessage(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, repo.ErrInsufficientStock) {
			writeMessage(w, http.StatusConflict, err.Error())
			return
		}
		http.Error(w, "could not place order", http.StatusInternalServerError)
		return
	}

	if viewCache != nil {
		viewCache.SetOrderView(view)
	}

	if err := writeJSON(w, http.StatusCreated, view); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetOrdersHandler godoc
// @Summary List all orders with their line items
// @Tags orders
// @Produce json
// @Success 200 {array} OrderViewResponse
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	views, err := orderEngine.Views()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetOrderByIDHandler godoc
// @Summary Get an order view by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderViewResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} MessageResponse
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	if viewCache != nil {
		if view, ok := viewCache.GetOrderView(id); ok {
			writeJSON(w, http.StatusOK, view)
			return
		}
	}

	view, err := orderEngine.View(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			writeMessage(w, http.StatusNotFound, "order not found")
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	if viewCache != nil {
		viewCache.SetOrderView(view)
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateOrderStatusHandler godoc
// @Summary Update the status of an order
// @Description Status is a free-text label, e.g. "in progress" or "shipped".
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param status body OrderStatusRequest true "New status"
// @Success 200 {object} OrderResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {object} MessageResponse
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id}/status [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	order, err := orderEngine.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			writeMessage(w, http.StatusNotFound, "order not found")
			return
		}
		http.Error(w, "could not update order status", http.StatusInternalServerError)
		return
	}

	if viewCache != nil {
		viewCache.InvalidateOrderView(id)
	}

	resp := OrderResponse{
		Id:        order.ID,
		CreatedAt: order.CreatedAt,
		Status:    order.Status,
	}
	writeJSON(w, http.StatusOK, resp)
}
