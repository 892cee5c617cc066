package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conectar/clients-api/internal/api/metrics"
	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

type ClientHandler struct {
	clientService ports.ClientService
}

func NewClientHandler(clientService ports.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create registers a new client record owned by the caller.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  messageResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.clientService.Create(c.Request().Context(), claims, req.toInput())
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.WithLabelValues(string(client.Status)).Inc()
	return c.JSON(http.StatusCreated, clientResponse{Message: "Client created successfully", Client: client})
}

// List returns the caller's clients (all clients for admins), optionally
// filtered and sorted.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        name    query  string  false  "substring match on trade name"
// @Param        taxId   query  string  false  "substring match on tax id"
// @Param        status  query  string  false  "exact status"
// @Param        city    query  string  false  "substring match on city"
// @Param        sortBy  query  string  false  "sort field"
// @Param        order   query  string  false  "asc or desc"
// @Success      200  {array}  domain.Client
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	filter := ports.ListClientsFilter{
		TradeName: c.QueryParam("name"),
		TaxID:     c.QueryParam("taxId"),
		Status:    c.QueryParam("status"),
		City:      c.QueryParam("city"),
		SortBy:    c.QueryParam("sortBy"),
		Order:     c.QueryParam("order"),
	}

	clients, err := h.clientService.List(c.Request().Context(), claims, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Stats summarizes the caller's own client records.
//
// @Summary      Per-owner client stats
// @Tags         clients
// @Produce      json
// @Success      200  {object}  ports.ClientStats
// @Router       /clients/my-stats [get]
func (h *ClientHandler) Stats(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.clientService.Stats(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get returns a single client the caller may see. A record owned by someone
// else renders as not found.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  messageResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	client, err := h.clientService.Get(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Update applies a partial patch to a client the caller owns (or any
// client, for admins).
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "client id"
// @Param        body  body  updateClientRequest  true  "fields to update"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  messageResponse
// @Router       /clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.clientService.Update(c.Request().Context(), claims, c.Param("id"), req.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found or no permission"})
		}
		return err
	}
	return c.JSON(http.StatusOK, clientResponse{Message: "Client updated successfully", Client: client})
}

// Delete removes a client the caller owns (or any client, for admins).
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "client id"
// @Success      200  {object}  ports.RemoveClientResult
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.clientService.Remove(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !result.Deleted && result.Message == "Client not found" {
		status = http.StatusNotFound
	}
	return c.JSON(status, result)
}
