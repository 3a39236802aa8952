package brcache

import "testing"

func TestKeyCanonicalization(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		want string
	}{
		{"string", StringKey("users/1"), "users/1"},
		{"empty string", StringKey(""), ""},
		{"int", IntKey(42), "42"},
		{"negative int", IntKey(-7), "-7"},
		{"flat multi", MultiKey{StringKey("a"), StringKey("b")}, "a/b"},
		{
			"composite",
			MultiKey{StringKey("views"), StringKey("controller"), StringKey("action"), IntKey(1), IntKey(2)},
			"views/controller/action/1/2",
		},
		{
			"nested multi flattens in order",
			MultiKey{StringKey("views"), StringKey("users/1"), MultiKey{IntKey(3), StringKey("x")}},
			"views/users/1/3/x",
		},
		{"single element multi", MultiKey{IntKey(9)}, "9"},
		{"empty multi", MultiKey{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.CacheKey(); got != tc.want {
				t.Fatalf("CacheKey() = %q, want %q", got, tc.want)
			}
		})
	}
}
