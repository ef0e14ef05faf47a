package stories

import "testing"

func TestRecommend_DefaultTheme(t *testing.T) {
	rec := Recommend(StoryPreferences{Topics: nil, ReadingLevel: 0, SessionMinutes: 5})
	if rec.Theme != "friendship" {
		t.Errorf("theme = %q, want friendship", rec.Theme)
	}
	if rec.SuggestedLengthSecs != 300 {
		t.Errorf("length = %d, want 300", rec.SuggestedLengthSecs)
	}
}

func TestRecommend_FirstTopicWins(t *testing.T) {
	rec := Recommend(StoryPreferences{
		Topics:         []string{"space", "dinosaurs"},
		ReadingLevel:   2,
		SessionMinutes: 10,
	})
	if rec.Theme != "space" {
		t.Errorf("theme = %q, want space", rec.Theme)
	}
	if rec.SuggestedLengthSecs != 650 {
		t.Errorf("length = %d, want 650 (600 base + 2*25)", rec.SuggestedLengthSecs)
	}
}

func TestRecommend_LengthTiers(t *testing.T) {
	tests := []struct {
		sessionMinutes int
		want           int
	}{
		{0, 300},
		{5, 300},
		{6, 600},
		{10, 600},
		{11, 900},
		{20, 900},
		{21, 1200},
		{25, 1200},
		{120, 1200},
	}

	for _, tt := range tests {
		rec := Recommend(StoryPreferences{Topics: []string{"math"}, SessionMinutes: tt.sessionMinutes})
		if rec.SuggestedLengthSecs != tt.want {
			t.Errorf("sessionMinutes=%d: length = %d, want %d",
				tt.sessionMinutes, rec.SuggestedLengthSecs, tt.want)
		}
	}
}

func TestRecommend_ReadingLevelBonus(t *testing.T) {
	rec := Recommend(StoryPreferences{Topics: []string{"ocean"}, ReadingLevel: 4, SessionMinutes: 15})
	if rec.SuggestedLengthSecs != 1000 {
		t.Errorf("length = %d, want 1000 (900 base + 4*25)", rec.SuggestedLengthSecs)
	}
}

func TestRecommend_NegativeReadingLevelShortens(t *testing.T) {
	// Length is deliberately not clamped; garbage in, shorter story out.
	rec := Recommend(StoryPreferences{ReadingLevel: -2, SessionMinutes: 5})
	if rec.SuggestedLengthSecs != 250 {
		t.Errorf("length = %d, want 250", rec.SuggestedLengthSecs)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	prefs := StoryPreferences{Topics: []string{"robots"}, ReadingLevel: 1, SessionMinutes: 8}
	first := Recommend(prefs)
	second := Recommend(prefs)
	if first != second {
		t.Errorf("repeated recommendation differs: %+v vs %+v", first, second)
	}
}
