package timelog

import "testing"

func TestDeriveKeyDeterministic(t *testing.T) {
	a := DeriveKey("2024/05/01", "08:00 AM")
	b := DeriveKey("2024/05/01", "08:00 AM")
	if a != b {
		t.Errorf("DeriveKey not deterministic: %q vs %q", a, b)
	}
	if a != "202405010800AM" {
		t.Errorf("DeriveKey = %q, want 202405010800AM", a)
	}
}

func TestDeriveKeyDistinctPairs(t *testing.T) {
	keys := map[string]string{}
	pairs := [][2]string{
		{"2024/05/01", "08:00 AM"},
		{"2024/05/01", "08:01 AM"},
		{"2024/05/01", "08:00 PM"},
		{"2024/05/02", "08:00 AM"},
		{"2024/12/31", "11:59 PM"},
	}
	for _, p := range pairs {
		key := DeriveKey(p[0], p[1])
		if prev, ok := keys[key]; ok {
			t.Errorf("key collision: %q from both %v and (%q, %q)", key, prev, p[0], p[1])
		}
		keys[key] = p[0] + "|" + p[1]
	}
}

func TestTimeLogKeyMatchesDeriveKey(t *testing.T) {
	log := TimeLog{Date: "2024/05/01", ClockIn: "08:00 AM", ClockOut: "05:00 PM", Hours: 8}
	if log.Key() != DeriveKey(log.Date, log.ClockIn) {
		t.Error("TimeLog.Key does not match DeriveKey")
	}
}
