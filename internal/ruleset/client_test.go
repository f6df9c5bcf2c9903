package ruleset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesc/chesc/internal/ruleset"
)

const profilesDoc = `
profiles:
  - name: shellish
    escape_char: "%"
    rules:
      - raw: "\n"
        escaped: "n"
      - raw: " "
        escaped: "s"
      - raw: "%"
        escaped: "%"
  - name: minimal
    rules:
      - raw: "\t"
        escaped: "t"
`

func TestFetchProfiles(t *testing.T) {
	var mux http.ServeMux
	mux.HandleFunc("/profiles.yaml", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "GET expected", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(profilesDoc))
	})

	srv := httptest.NewServer(&mux)
	defer srv.Close()

	c := ruleset.NewClientWithHTTP(srv.Client())
	profiles, err := c.FetchProfiles(context.Background(), srv.URL+"/profiles.yaml")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	require.Equal(t, "shellish", profiles[0].Name)
	require.Equal(t, ruleset.Char('%'), profiles[0].EscapeChar)
	require.Len(t, profiles[0].Rules, 3)

	esc, err := profiles[0].Escaper()
	require.NoError(t, err)
	require.Equal(t, `a%sb%nc`, esc.Escape("a b\nc"))

	require.Equal(t, "minimal", profiles[1].Name)

	_, err = c.FetchProfiles(context.Background(), srv.URL+"/missing.yaml")
	require.Error(t, err)
}

func TestParseProfiles(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  bool
	}{
		{
			name: "valid",
			in:   profilesDoc,
		},
		{
			name: "empty_doc",
			in:   "",
		},
		{
			name: "nameless_profile",
			in: `
profiles:
  - rules:
      - raw: "a"
        escaped: "a"
`,
			err: true,
		},
		{
			name: "multi_char_rule",
			in: `
profiles:
  - name: broken
    rules:
      - raw: "ab"
        escaped: "a"
`,
			err: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ruleset.ParseProfiles([]byte(tc.in))
			if tc.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
