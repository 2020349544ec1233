package pagination

import "testing"

func TestDerive(t *testing.T) {
	cases := []struct {
		name      string
		pageRaw   string
		limitRaw  string
		wantPage  int
		wantLimit int
	}{
		{"empty falls back to defaults", "", "", 1, 10},
		{"valid values pass through", "3", "25", 3, 25},
		{"non-numeric page falls back", "abc", "25", 1, 25},
		{"zero page falls back", "0", "25", 1, 25},
		{"negative page falls back", "-2", "25", 1, 25},
		{"limit above max falls back", "2", "1000", 2, 10},
		{"zero limit falls back", "2", "0", 2, 10},
		{"max limit accepted", "1", "100", 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := Derive(tc.pageRaw, tc.limitRaw)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Fatalf("Derive(%q, %q) = (%d, %d), want (%d, %d)",
					tc.pageRaw, tc.limitRaw, page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope([]int{1, 2, 3}, 25, 2, 10)

	if env.Pagination.Total != 25 {
		t.Errorf("Total = %d, want 25", env.Pagination.Total)
	}
	if env.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", env.Pagination.TotalPages)
	}
	if env.Pagination.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", env.Pagination.CurrentPage)
	}
	if env.Pagination.ItemsPerPage != 10 {
		t.Errorf("ItemsPerPage = %d, want 10", env.Pagination.ItemsPerPage)
	}
	if !env.Pagination.HasNext {
		t.Error("HasNext = false, want true on page 2 of 3")
	}
	if !env.Pagination.HasPrev {
		t.Error("HasPrev = false, want true on page 2")
	}
}

func TestNewEnvelopeEdges(t *testing.T) {
	t.Run("empty result set", func(t *testing.T) {
		env := NewEnvelope([]int{}, 0, 1, 10)
		if env.Pagination.TotalPages != 0 {
			t.Errorf("TotalPages = %d, want 0", env.Pagination.TotalPages)
		}
		if env.Pagination.HasNext || env.Pagination.HasPrev {
			t.Error("empty set must have neither next nor prev")
		}
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		env := NewEnvelope(nil, 30, 3, 10)
		if env.Pagination.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", env.Pagination.TotalPages)
		}
		if env.Pagination.HasNext {
			t.Error("last page must not report HasNext")
		}
	})

	t.Run("page beyond range", func(t *testing.T) {
		env := NewEnvelope(nil, 5, 9, 10)
		if env.Pagination.HasNext {
			t.Error("page past the end must not report HasNext")
		}
		if !env.Pagination.HasPrev {
			t.Error("page past the end must report HasPrev")
		}
	})
}
