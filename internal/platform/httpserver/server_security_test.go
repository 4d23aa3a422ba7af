package httpserver

import (
	"net/http"
	"testing"
	"time"

	gighttp "talentia/contexts/marketplace/gig-marketplace/transport/http"
	"talentia/internal/platform/identity"
	"talentia/internal/platform/ratelimit"
)

func TestMutatingRoutesRequireBearerToken(t *testing.T) {
	server := newTestServer()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/gigs"},
		{http.MethodGet, "/gigs/my"},
		{http.MethodPost, "/gigs/gig-1/apply"},
		{http.MethodGet, "/gigs/gig-1/applications"},
		{http.MethodPost, "/applications/app-1/approve"},
		{http.MethodGet, "/applications/app-1/conversation"},
		{http.MethodPost, "/applications/app-1/messages"},
		{http.MethodGet, "/conversations/me"},
		{http.MethodPost, "/applications/app-1/contracts"},
		{http.MethodGet, "/applications/app-1/contract"},
		{http.MethodPost, "/contracts/contract-1/release"},
	}
	for _, route := range routes {
		rr := server.do(t, route.method, route.path, "", nil)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestForgedTokenIsRejected(t *testing.T) {
	server := newTestServer()
	foreign, err := identity.NewVerifier("another-secret", "")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	token, err := foreign.Issue("company-1", "COMPANY", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rr := server.do(t, http.MethodPost, "/gigs", "Bearer "+token, gighttp.PostGigRequest{Title: "x"})
	expectStatus(t, rr, http.StatusUnauthorized)

	var body gighttp.ErrorResponse
	decodeBody(t, rr, &body)
	if body.Code != "invalid_token" {
		t.Fatalf("expected invalid_token, got %s", body.Code)
	}
}

func TestStudentCannotPostGig(t *testing.T) {
	server := newTestServer()
	rr := server.do(t, http.MethodPost, "/gigs", server.token(t, "student-1", "STUDENT"), gighttp.PostGigRequest{Title: "Logo"})
	expectStatus(t, rr, http.StatusForbidden)
}

func TestCompanyCannotApply(t *testing.T) {
	server := newTestServer()
	gig := postGig(t, server)
	rr := server.do(t, http.MethodPost, "/gigs/"+gig.GigID+"/apply", server.token(t, "company-1", "COMPANY"), nil)
	expectStatus(t, rr, http.StatusForbidden)
}

func TestForeignCompanyCannotApproveOrRelease(t *testing.T) {
	server := newTestServer()
	gig := postGig(t, server)
	application := apply(t, server, gig.GigID)
	foreign := server.token(t, "company-2", "COMPANY")

	rr := server.do(t, http.MethodPost, "/applications/"+application.ApplicationID+"/approve", foreign, nil)
	expectStatus(t, rr, http.StatusForbidden)

	rr = server.do(t, http.MethodGet, "/gigs/"+gig.GigID+"/applications", foreign, nil)
	expectStatus(t, rr, http.StatusForbidden)

	contract := createContract(t, server, application.ApplicationID, "70000")
	rr = server.do(t, http.MethodPost, "/contracts/"+contract.ContractID+"/release", foreign, nil)
	expectStatus(t, rr, http.StatusForbidden)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	server := newTestServer()
	gig := postGig(t, server)
	application := apply(t, server, gig.GigID)

	rr := server.do(t, http.MethodPost, "/applications/"+application.ApplicationID+"/contracts", server.token(t, "company-1", "COMPANY"), map[string]string{"agreed_amount": "lots"})
	expectStatus(t, rr, http.StatusBadRequest)

	var body gighttp.ErrorResponse
	decodeBody(t, rr, &body)
	if body.Code != "invalid_json" {
		t.Fatalf("expected invalid_json, got %s", body.Code)
	}
}

func TestMutatingRoutesAreRateLimitedPerCaller(t *testing.T) {
	server := newTestServerWithLimiter(ratelimit.NewLocal(0.001, 1))
	company := server.token(t, "company-1", "COMPANY")

	rr := server.do(t, http.MethodPost, "/gigs", company, gighttp.PostGigRequest{Title: "First"})
	expectStatus(t, rr, http.StatusCreated)

	rr = server.do(t, http.MethodPost, "/gigs", company, gighttp.PostGigRequest{Title: "Second"})
	expectStatus(t, rr, http.StatusTooManyRequests)

	rr = server.do(t, http.MethodGet, "/gigs/my", company, nil)
	expectStatus(t, rr, http.StatusOK)
}
