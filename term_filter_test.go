package searchwire

import "testing"

func TestTermFilter_Render(t *testing.T) {
	tests := []struct {
		name   string
		filter *TermFilter
		want   string
	}{
		{
			"string value",
			NewTermFilter("user", "kimchy"),
			`{"term":{"user":"kimchy"}}`,
		},
		{
			"bool value",
			NewTermFilter("hidden", true),
			`{"term":{"hidden":true}}`,
		},
		{
			"numeric value",
			NewTermFilter("age", 42),
			`{"term":{"age":42}}`,
		},
		{
			"with metadata",
			NewTermFilter("user", "kimchy").FilterName("by_user").Cache(false).CacheKey("users"),
			`{"term":{"user":"kimchy","_name":"by_user","_cache":false,"_cache_key":"users"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderFilter(t, tt.filter); got != tt.want {
				t.Errorf("rendered %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMatchAllFilter_Render(t *testing.T) {
	if got := renderFilter(t, NewMatchAllFilter()); got != `{"match_all":{}}` {
		t.Errorf("rendered %s, want {\"match_all\":{}}", got)
	}
}
