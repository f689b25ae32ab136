package domain

import "testing"

func TestDecide_Anonymous(t *testing.T) {
	sess := Session{IsAuthenticated: false}

	if d := Decide(sess); d != RedirectLogin {
		t.Fatalf("expected RedirectLogin, got %v", d)
	}
	if d := Decide(sess, RoleAdmin); d != RedirectLogin {
		t.Fatalf("expected RedirectLogin with roles, got %v", d)
	}
}

func TestDecide_RoleMismatch(t *testing.T) {
	sess := Session{
		User:            &User{Role: RoleConsumer},
		IsAuthenticated: true,
	}

	if d := Decide(sess, RoleAdmin); d != RedirectUnauthorized {
		t.Fatalf("expected RedirectUnauthorized, got %v", d)
	}
}

func TestDecide_RoleAllowed(t *testing.T) {
	sess := Session{
		User:            &User{Role: RoleAdmin},
		IsAuthenticated: true,
	}

	if d := Decide(sess, RoleAdmin); d != Render {
		t.Fatalf("expected Render, got %v", d)
	}
	if d := Decide(sess, RoleAdmin, RoleProducer); d != Render {
		t.Fatalf("expected Render with multiple roles, got %v", d)
	}
}

func TestDecide_NoRoleRestriction(t *testing.T) {
	sess := Session{
		User:            &User{Role: RoleConsumer},
		IsAuthenticated: true,
	}

	if d := Decide(sess); d != Render {
		t.Fatalf("expected Render without role restriction, got %v", d)
	}
}

func TestDashboardPath(t *testing.T) {
	cases := []struct {
		user *User
		want string
	}{
		{&User{Role: RoleAdmin}, PathAdminDashboard},
		{&User{Role: RoleProducer}, PathProducerDashboard},
		{&User{Role: RoleConsumer}, PathConsumerDashboard},
		{&User{Role: "intruder"}, PathLogin},
		{nil, PathLogin},
	}

	for _, tc := range cases {
		if got := DashboardPath(tc.user); got != tc.want {
			t.Fatalf("DashboardPath(%+v) = %s, want %s", tc.user, got, tc.want)
		}
	}
}
