package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/testutil"
	"github.com/gin-gonic/gin"
)

func TestAuthRequired(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/transfers", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/transfers", nil, "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", w.Code)
	}
}

func TestTransferListAndUpdate(t *testing.T) {
	env := testutil.Setup(t)
	ctx := context.Background()
	token := testutil.DefaultTestToken()

	err := env.Repos.Transfer.Create(ctx, &entity.Transfer{
		TransferID:      "T-1",
		OrderCode:       "SO-01",
		Dest:            "Kho Q7",
		TotalPackages:   5,
		TransportStatus: entity.TransportStatusAwaitingHandover,
	})
	if err != nil {
		t.Fatalf("seed transfer: %v", err)
	}

	w := testutil.DoRequest(env.Router, "GET", "/api/transfers", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 0 {
		t.Fatalf("envelope code: %v", resp["code"])
	}
	data := resp["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(data))
	}

	w = testutil.DoRequest(env.Router, "PUT", "/api/transfers/T-1",
		map[string]string{"note": "giao giờ hành chính"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	updated := resp["data"].(map[string]interface{})
	if updated["note"] != "giao giờ hành chính" {
		t.Fatalf("note = %v", updated["note"])
	}
	// Untouched columns survive the merge.
	if updated["orderCode"] != "SO-01" {
		t.Fatalf("orderCode = %v", updated["orderCode"])
	}

	w = testutil.DoRequest(env.Router, "PUT", "/api/transfers/T-404",
		map[string]string{"note": "x"}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	if resp["code"].(float64) != 40400 {
		t.Fatalf("envelope code: %v", resp["code"])
	}
}

func TestTransferUpdateAcceptsScalarJSON(t *testing.T) {
	env := testutil.Setup(t)
	ctx := context.Background()
	token := testutil.DefaultTestToken()

	err := env.Repos.Transfer.Create(ctx, &entity.Transfer{
		TransferID:      "T-1",
		OrderCode:       "SO-01",
		Dest:            "Kho Q7",
		TotalPackages:   5,
		TransportStatus: entity.TransportStatusAwaitingHandover,
	})
	if err != nil {
		t.Fatalf("seed transfer: %v", err)
	}

	// Numbers, booleans, and nulls are stringified into cells.
	w := testutil.DoRequest(env.Router, "PUT", "/api/transfers/T-1",
		map[string]interface{}{"totalPackages": 8, "hasVali": true, "note": nil}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	updated := resp["data"].(map[string]interface{})
	if updated["totalPackages"].(float64) != 8 {
		t.Fatalf("totalPackages = %v", updated["totalPackages"])
	}
	if updated["hasVali"] != "true" {
		t.Fatalf("hasVali = %v", updated["hasVali"])
	}
	if updated["orderCode"] != "SO-01" {
		t.Fatalf("orderCode = %v", updated["orderCode"])
	}

	// Nested values have no cell representation.
	w = testutil.DoRequest(env.Router, "PUT", "/api/transfers/T-1",
		map[string]interface{}{"note": []string{"a"}}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for nested value, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCarrierCreate(t *testing.T) {
	env := testutil.Setup(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/carriers",
		map[string]interface{}{"name": "Giao Nhanh", "vehicleTypes": "Xe tải 1.5T"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	created := resp["data"].(map[string]interface{})
	if created["carrierId"] == "" {
		t.Fatal("carrierId not minted")
	}

	// A carrier without a name is rejected.
	w = testutil.DoRequest(env.Router, "POST", "/api/carriers",
		map[string]interface{}{"phone": "0901234567"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for nameless carrier, got %d", w.Code)
	}
}

func TestTransportGenerateID(t *testing.T) {
	env := testutil.Setup(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/transport-requests/generate-id", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("generate status %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["requestId"] != "MSC-00000001" {
		t.Fatalf("requestId = %v", data["requestId"])
	}
	if data["rowIndex"].(float64) != 2 {
		t.Fatalf("rowIndex = %v", data["rowIndex"])
	}

	// The row is reserved, so the next id moves on.
	w = testutil.DoRequest(env.Router, "POST", "/api/transport-requests/generate-id", nil, token)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if data["requestId"] != "MSC-00000002" {
		t.Fatalf("second requestId = %v", data["requestId"])
	}
}

func TestTransportSelectAndSubmit(t *testing.T) {
	distance := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gin.H{"success": true, "distance": 4.2})
	}))
	defer distance.Close()

	env := testutil.SetupWithDistance(t, distance.URL)
	ctx := context.Background()
	token := testutil.DefaultTestToken()

	for _, id := range []string{"T-1", "T-2"} {
		err := env.Repos.Transfer.Create(ctx, &entity.Transfer{
			TransferID:      id,
			OrderCode:       "SO-" + id,
			Source:          "Kho Tân Bình",
			Dest:            "Kho " + id,
			TotalPackages:   4,
			TotalVolume:     1,
			TransportStatus: entity.TransportStatusAwaitingHandover,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	w := testutil.DoRequest(env.Router, "POST", "/api/transport-requests/select",
		map[string]interface{}{"transferIds": []string{"T-1", "T-2"}}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("select status %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	form := resp["data"].(map[string]interface{})["form"].(map[string]interface{})
	if form["pickupAddress"] != "Kho Tân Bình" {
		t.Fatalf("pickupAddress = %v", form["pickupAddress"])
	}
	if form["totalPackages"].(float64) != 8 {
		t.Fatalf("totalPackages = %v", form["totalPackages"])
	}

	form["carrierName"] = "Giao Nhanh"
	form["vehicleType"] = "Xe tải 1.5T"
	w = testutil.DoRequest(env.Router, "POST", "/api/transport-requests/submit", form, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	result := resp["data"].(map[string]interface{})
	if result["requestId"] != "MSC-00000001" {
		t.Fatalf("requestId = %v", result["requestId"])
	}

	request := result["request"].(map[string]interface{})
	stops := request["stops"].([]interface{})
	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}
	if stops[0].(map[string]interface{})["distanceKm"].(float64) != 4.2 {
		t.Fatalf("stop distance: %v", stops[0])
	}

	// The contributing transfers moved to in-transit.
	transfer, err := env.Repos.Transfer.FindByID(ctx, "T-1")
	if err != nil {
		t.Fatalf("find transfer: %v", err)
	}
	if transfer.TransportStatus != entity.TransportStatusInTransit {
		t.Fatalf("transfer status = %q", transfer.TransportStatus)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/transport-requests/MSC-00000001", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("get status %d: %s", w.Code, w.Body.String())
	}
}

func TestTransportSubmitRejectsMissingCarrier(t *testing.T) {
	env := testutil.Setup(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/transport-requests/submit",
		map[string]interface{}{"transfers": []map[string]interface{}{{"transfer_id": "T-1"}}}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40000 {
		t.Fatalf("envelope code: %v", resp["code"])
	}
}

func TestSheetsRawEndpoints(t *testing.T) {
	env := testutil.Setup(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/sheets/write",
		map[string]interface{}{
			"sheet":  "Scratch",
			"range":  "A1",
			"values": [][]string{{"a", "b"}},
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("write status %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/sheets/read",
		map[string]interface{}{"sheet": "Scratch", "range": "A1:B1"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("read status %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].(map[string]interface{})["values"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %v", resp["data"])
	}
	cells := rows[0].([]interface{})
	if cells[0] != "a" || cells[1] != "b" {
		t.Fatalf("cells: %v", cells)
	}
}
