//go:build e2e
// +build e2e

package e2e

import (
	"fmt"
	"net/http"
)

// TestHealthCheck verifies the health endpoint reports a live database.
func (s *E2ETestSuite) TestHealthCheck() {
	resp, body := s.doRequest(http.MethodGet, "/health", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", body["status"])
}

// TestPaymentLifecycle walks the happy path: a paid sport, a registration,
// an order, a signed gateway callback and a confirmed registration.
func (s *E2ETestSuite) TestPaymentLifecycle() {
	s.createSport("badminton", 500, 0, false)

	regID, status := s.register("user-1", "badminton")
	s.Require().Equal("payment_pending", status)

	orderID := s.createOrder("user-1", regID)

	resp, body := s.verifyPayment(orderID, "pay_1")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "verify failed: %v", body)
	payment := body["payment"].(map[string]interface{})
	s.Equal("success", payment["status"])
	s.Equal("confirmed", payment["registration_status"])

	// The database carries the captured amount.
	dbStatus, amountPaid := s.registrationRow(regID)
	s.Equal("confirmed", dbStatus)
	s.Equal(int64(500), amountPaid)

	// Gateway retries the same callback: the outcome does not change.
	resp, body = s.verifyPayment(orderID, "pay_1")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	replay := body["payment"].(map[string]interface{})
	s.Equal("success", replay["status"])
	s.Equal("pay_1", replay["payment_id"])

	// A different capture for the same order is rejected.
	resp, body = s.verifyPayment(orderID, "pay_2")
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(body)
	s.Equal("ALREADY_CAPTURED", code)
}

// TestForgedCallbackRejected verifies that a callback with a bad signature
// leaves the payment and the registration untouched.
func (s *E2ETestSuite) TestForgedCallbackRejected() {
	s.createSport("chess", 200, 0, false)
	regID, _ := s.register("user-1", "chess")
	orderID := s.createOrder("user-1", regID)

	resp, body := s.doRequest(http.MethodPost, "/api/payments/verify", "", map[string]interface{}{
		"order_id":   orderID,
		"payment_id": "pay_1",
		"signature":  "deadbeef",
	})
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
	code, _ := s.parseErrorResponse(body)
	s.Equal("SIGNATURE_MISMATCH", code)

	status, amountPaid := s.registrationRow(regID)
	s.Equal("payment_pending", status)
	s.Equal(int64(0), amountPaid)
}

// TestFreeSportRegistration verifies free sports land in pending and
// confirm through a zero-amount order.
func (s *E2ETestSuite) TestFreeSportRegistration() {
	s.createSport("carrom", 0, 0, false)

	regID, status := s.register("user-1", "carrom")
	s.Require().Equal("pending", status)

	orderID := s.createOrder("user-1", regID)
	resp, body := s.verifyPayment(orderID, "pay_1")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "verify failed: %v", body)
	s.Equal("confirmed", body["payment"].(map[string]interface{})["registration_status"])

	dbStatus, amountPaid := s.registrationRow(regID)
	s.Equal("confirmed", dbStatus)
	s.Equal(int64(0), amountPaid)
}

// TestWaitlistOverflow verifies the capacity gate and waitlist placement
// against the real partial unique index.
func (s *E2ETestSuite) TestWaitlistOverflow() {
	s.createSport("table-tennis", 0, 2, true)

	firstID, status := s.register("user-1", "table-tennis")
	s.Equal("pending", status)
	_, status = s.register("user-2", "table-tennis")
	s.Equal("pending", status)

	waitlistedID, status := s.register("user-3", "table-tennis")
	s.Require().Equal("waitlist", status)

	// Duplicate registration is blocked by the partial unique index.
	resp, body := s.doRequest(http.MethodPost, "/api/registrations", "user-3",
		map[string]interface{}{"sport_id": "table-tennis"})
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(body)
	s.Equal("ALREADY_REGISTERED", code)

	// A freed slot lets the admin promote the waitlisted registration.
	resp, _ = s.doRequest(http.MethodPost,
		fmt.Sprintf("/api/registrations/%d/withdraw", firstID), "user-1", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, body = s.doRequest(http.MethodPost,
		fmt.Sprintf("/api/registrations/%d/promote", waitlistedID), adminUserID, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "promote failed: %v", body)
	s.Equal("pending", body["registration"].(map[string]interface{})["status"])
}

// TestSportCancellationRefund verifies the cancellation path: the sport
// closes, registrations fall and the captured payment is refunded.
func (s *E2ETestSuite) TestSportCancellationRefund() {
	s.createSport("kabaddi", 300, 0, false)

	regID, _ := s.register("user-1", "kabaddi")
	orderID := s.createOrder("user-1", regID)
	resp, _ := s.verifyPayment(orderID, "pay_1")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, body := s.doRequest(http.MethodPost, "/api/sports/kabaddi/cancel", adminUserID, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "cancel failed: %v", body)
	s.Equal(float64(1), body["cancelled"])

	status, _ := s.registrationRow(regID)
	s.Equal("cancelled", status)

	resp, body = s.doRequest(http.MethodPost,
		fmt.Sprintf("/api/payments/%d/refund", regID), adminUserID, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "refund failed: %v", body)
	payment := body["payment"].(map[string]interface{})
	s.Equal("refunded", payment["status"])
	s.Equal(float64(300), payment["amount"])

	// A second refund is rejected.
	resp, body = s.doRequest(http.MethodPost,
		fmt.Sprintf("/api/payments/%d/refund", regID), adminUserID, nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(body)
	s.Equal("REFUND_NOT_ALLOWED", code)
}

// TestAdminBoundary verifies admin-only surfaces reject plain users.
func (s *E2ETestSuite) TestAdminBoundary() {
	payload := map[string]interface{}{
		"sport_id":              "cricket",
		"name":                  "Cricket",
		"category":              "team",
		"registration_start":    "2026-01-01T00:00:00Z",
		"registration_deadline": "2026-12-31T00:00:00Z",
	}

	resp, _ := s.doRequest(http.MethodPost, "/api/sports", "user-1", payload)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, _ = s.doRequest(http.MethodPost, "/api/sports", "", payload)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
