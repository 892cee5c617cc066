package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

const validClientBody = `{
	"trade_name": "Padaria Central",
	"tax_id": "12.345.678/0001-90",
	"legal_name": "Padaria Central Ltda",
	"zip_code": "01310-100",
	"street": "Av. Paulista",
	"number": "1000",
	"district": "Bela Vista",
	"city": "Sao Paulo",
	"state": "SP"
}`

func TestClientHandler_Create(t *testing.T) {
	e := newTestEcho()

	t.Run("created", func(t *testing.T) {
		svc := &stubClientService{client: &domain.Client{ID: "c1", TradeName: "Padaria Central", Status: domain.ClientActive}}
		h := NewClientHandler(svc)

		c, rec := newJSONContext(e, http.MethodPost, "/clients", validClientBody)
		asCaller(c, "u1", domain.RoleUser)

		if err := h.Create(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.lastInput.TradeName != "Padaria Central" {
			t.Fatalf("input not forwarded: %+v", svc.lastInput)
		}
	})

	t.Run("owner in body is ignored", func(t *testing.T) {
		svc := &stubClientService{client: &domain.Client{ID: "c1", Status: domain.ClientActive}}
		h := NewClientHandler(svc)

		body := `{
			"trade_name": "Padaria Central",
			"tax_id": "12.345.678/0001-90",
			"legal_name": "Padaria Central Ltda",
			"zip_code": "01310-100",
			"street": "Av. Paulista",
			"number": "1000",
			"district": "Bela Vista",
			"city": "Sao Paulo",
			"state": "SP",
			"owner_id": "someone-else"
		}`
		c, rec := newJSONContext(e, http.MethodPost, "/clients", body)
		asCaller(c, "u1", domain.RoleUser)

		if err := h.Create(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		h := NewClientHandler(&stubClientService{})

		c, rec := newJSONContext(e, http.MethodPost, "/clients", `{"trade_name":"Only Name"}`)
		asCaller(c, "u1", domain.RoleUser)

		if err := h.Create(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestClientHandler_Get(t *testing.T) {
	e := newTestEcho()

	t.Run("not found", func(t *testing.T) {
		svc := &stubClientService{err: domain.ErrClientNotFound}
		h := NewClientHandler(svc)

		c, rec := newJSONContext(e, http.MethodGet, "/clients/missing", "")
		c.SetParamNames("id")
		c.SetParamValues("missing")
		asCaller(c, "u1", domain.RoleUser)

		if err := h.Get(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}

		var resp messageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Message != "Client not found" {
			t.Fatalf("unexpected message %q", resp.Message)
		}
	})

	t.Run("found", func(t *testing.T) {
		svc := &stubClientService{client: &domain.Client{ID: "c1", TradeName: "Padaria Central"}}
		h := NewClientHandler(svc)

		c, rec := newJSONContext(e, http.MethodGet, "/clients/c1", "")
		c.SetParamNames("id")
		c.SetParamValues("c1")
		asCaller(c, "u1", domain.RoleUser)

		if err := h.Get(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastID != "c1" {
			t.Fatalf("id not forwarded, got %q", svc.lastID)
		}
	})
}

func TestClientHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubClientService{err: domain.ErrClientNotFound}
	h := NewClientHandler(svc)

	c, rec := newJSONContext(e, http.MethodPatch, "/clients/c9", `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues("c9")
	asCaller(c, "u1", domain.RoleUser)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Client not found or no permission" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestClientHandler_Delete(t *testing.T) {
	e := newTestEcho()

	tests := []struct {
		name       string
		result     *ports.RemoveClientResult
		wantStatus int
	}{
		{"deleted", &ports.RemoveClientResult{Deleted: true, Message: "Client deleted successfully"}, http.StatusOK},
		{"not found", &ports.RemoveClientResult{Deleted: false, Message: "Client not found"}, http.StatusNotFound},
		{"lost race", &ports.RemoveClientResult{Deleted: false, Message: "Failed to delete client"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubClientService{removed: tt.result}
			h := NewClientHandler(svc)

			c, rec := newJSONContext(e, http.MethodDelete, "/clients/c1", "")
			c.SetParamNames("id")
			c.SetParamValues("c1")
			asCaller(c, "u1", domain.RoleUser)

			if err := h.Delete(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp ports.RemoveClientResult
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Message != tt.result.Message {
				t.Fatalf("unexpected message %q", resp.Message)
			}
		})
	}
}

func TestClientHandler_Stats(t *testing.T) {
	e := newTestEcho()
	svc := &stubClientService{stats: &ports.ClientStats{Total: 3, Active: 2, Inactive: 1, ActivePercent: 67}}
	h := NewClientHandler(svc)

	c, rec := newJSONContext(e, http.MethodGet, "/clients/my-stats", "")
	asCaller(c, "u1", domain.RoleUser)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ports.ClientStats
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ActivePercent != 67 {
		t.Fatalf("expected 67 percent, got %d", resp.ActivePercent)
	}
}
