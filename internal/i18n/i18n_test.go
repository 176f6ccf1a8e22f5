package i18n_test

import (
	"testing"

	"github.com/mesokit/mesokit/internal/i18n"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang i18n.Lang
		key  string
		want string
	}{
		{
			name: "english lookup",
			lang: i18n.LangEn,
			key:  "missedDay.option.skipContinue.label",
			want: "Skip it and continue the plan",
		},
		{
			name: "finnish lookup",
			lang: i18n.LangFi,
			key:  "missedDay.option.skipContinue.label",
			want: "Ohita ja jatka ohjelmaa",
		},
		{
			name: "unknown language falls back to english",
			lang: i18n.Lang("sv"),
			key:  "overload.addRep",
			want: "Solid session last time. Aim for one more rep per set.",
		},
		{
			name: "unknown key falls back to the key",
			lang: i18n.LangEn,
			key:  "no.such.key",
			want: "no.such.key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := i18n.Message(tt.lang, tt.key); got != tt.want {
				t.Errorf("Message(%s, %s) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestFinnishCoversEveryKey(t *testing.T) {
	t.Parallel()

	for _, key := range i18n.Keys() {
		en := i18n.Message(i18n.LangEn, key)
		fi := i18n.Message(i18n.LangFi, key)
		if fi == key {
			t.Errorf("key %s has no Finnish translation", key)
		}
		if fi == en {
			t.Errorf("key %s is untranslated in Finnish", key)
		}
	}
}
