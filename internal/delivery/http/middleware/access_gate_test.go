package middleware

import "testing"

func TestDecide_PublicPaths(t *testing.T) {
	for _, path := range []string{
		"/",
		"/health",
		"/assets/css/app.css",
		"/api/auth/login",
		"/api/test/ping",
	} {
		d := Decide(path, false)
		if !d.Allow {
			t.Fatalf("expected %s to be public, got redirect to %q", path, d.RedirectTo)
		}
	}
}

func TestDecide_AuthPagesBounceSignedInVisitors(t *testing.T) {
	for _, path := range []string{PathLogin, PathRegister} {
		d := Decide(path, true)
		if d.Allow {
			t.Fatalf("expected %s to redirect signed-in visitor", path)
		}
		if d.RedirectTo != PathDashboard {
			t.Fatalf("expected redirect to %s, got %q", PathDashboard, d.RedirectTo)
		}
	}
}

func TestDecide_AuthPagesAllowAnonymous(t *testing.T) {
	for _, path := range []string{PathLogin, PathRegister} {
		if d := Decide(path, false); !d.Allow {
			t.Fatalf("expected anonymous visitor on %s to pass", path)
		}
	}
}

func TestDecide_ProtectedWithoutTokenCarriesOrigin(t *testing.T) {
	d := Decide("/dashboard", false)
	if d.Allow {
		t.Fatalf("expected /dashboard to be protected")
	}
	if d.RedirectTo != "/auth/login?from=/dashboard" {
		t.Fatalf("unexpected redirect %q", d.RedirectTo)
	}

	d = Decide("/resume/builder", false)
	if d.RedirectTo != "/auth/login?from=/resume/builder" {
		t.Fatalf("unexpected redirect %q", d.RedirectTo)
	}
}

func TestDecide_ProtectedWithToken(t *testing.T) {
	for _, path := range []string{"/dashboard", "/resume/builder", "/api/resumes/r1"} {
		if d := Decide(path, true); !d.Allow {
			t.Fatalf("expected %s to pass with valid token, got redirect to %q", path, d.RedirectTo)
		}
	}
}

func TestDecide_PrefixMatchIsAnchored(t *testing.T) {
	// Lookalikes of the public prefixes stay protected.
	for _, path := range []string{"/assets", "/api/authx/thing", "/api/tests"} {
		if d := Decide(path, false); d.Allow {
			t.Fatalf("expected %s to be protected", path)
		}
	}
}
