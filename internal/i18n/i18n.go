// Package i18n holds the user-facing message catalog. Services emit stable
// message keys; clients resolve them to text in the user's language here.
package i18n

// Lang selects a message catalog.
type Lang string

// Supported languages.
const (
	LangEn Lang = "en"
	LangFi Lang = "fi"
)

//nolint:gochecknoglobals // immutable message catalogs.
var messages = map[Lang]map[string]string{
	LangEn: {
		"day.fullBodyA": "Full Body A",
		"day.fullBodyB": "Full Body B",
		"day.fullBodyC": "Full Body C",
		"day.upperA":    "Upper A",
		"day.lowerA":    "Lower A",
		"day.upperB":    "Upper B",
		"day.lowerB":    "Lower B",
		"day.upper":     "Upper",
		"day.lower":     "Lower",
		"day.push":      "Push",
		"day.pull":      "Pull",
		"day.legs":      "Legs",
		"day.pushA":     "Push A",
		"day.pullA":     "Pull A",
		"day.legsA":     "Legs A",
		"day.pushB":     "Push B",
		"day.pullB":     "Pull B",
		"day.legsB":     "Legs B",

		"overload.decreaseWeight": "Last time most sets fell short, so the weight comes down a step.",
		"overload.increaseWeight": "You topped the rep range two sessions in a row. Time to add weight.",
		"overload.addRep":         "Solid session last time. Aim for one more rep per set.",

		"missedDay.nudgeSingle":    "You missed a workout. Let's get the plan back on track.",
		"missedDay.nudgeMultiple":  "A couple of workouts slipped by. Pick how you want to catch up.",
		"missedDay.nudgeLongBreak": "It's been over a week since your last workout. Ease back in.",
		"missedDay.nudgeUrgent":    "The plan has slipped quite a bit. Best to reset and move on.",
		"missedDay.nudgeDeload":    "It's a deload week, so a missed day costs you nothing. Skip it and recover.",

		"missedDay.option.doMissed.label":             "Do the missed workout today",
		"missedDay.option.doMissed.description":       "Your plan picks up where it left off, and later days move over.",
		"missedDay.option.skipContinue.label":         "Skip it and continue the plan",
		"missedDay.option.skipContinue.description":   "The missed day is written off and the rest of the week stays on schedule.",
		"missedDay.option.merge.label":                "Fold the missed work into your next session",
		"missedDay.option.merge.description":          "Your next workout gets a trimmed dose of the missed exercises.",
		"missedDay.option.rescheduleWeek.label":       "Reschedule this week's remaining workouts",
		"missedDay.option.rescheduleWeek.description": "Every remaining day moves to your upcoming training weekdays.",
	},
	LangFi: {
		"day.fullBodyA": "Koko keho A",
		"day.fullBodyB": "Koko keho B",
		"day.fullBodyC": "Koko keho C",
		"day.upperA":    "Ylävartalo A",
		"day.lowerA":    "Alavartalo A",
		"day.upperB":    "Ylävartalo B",
		"day.lowerB":    "Alavartalo B",
		"day.upper":     "Ylävartalo",
		"day.lower":     "Alavartalo",
		"day.push":      "Työntävät",
		"day.pull":      "Vetävät",
		"day.legs":      "Jalat",
		"day.pushA":     "Työntävät A",
		"day.pullA":     "Vetävät A",
		"day.legsA":     "Jalat A",
		"day.pushB":     "Työntävät B",
		"day.pullB":     "Vetävät B",
		"day.legsB":     "Jalat B",

		"overload.decreaseWeight": "Viimeksi suurin osa sarjoista jäi vajaaksi, joten painoa lasketaan askel.",
		"overload.increaseWeight": "Saavutit toistohaarukan ylärajan kahdesti peräkkäin. Aika lisätä painoa.",
		"overload.addRep":         "Vahva treeni viimeksi. Tavoittele yhtä lisätoistoa sarjaa kohden.",

		"missedDay.nudgeSingle":    "Yksi treeni jäi väliin. Palautetaan ohjelma raiteilleen.",
		"missedDay.nudgeMultiple":  "Pari treeniä jäi väliin. Valitse, miten haluat ottaa kiinni.",
		"missedDay.nudgeLongBreak": "Edellisestä treenistä on yli viikko. Aloita rauhallisesti.",
		"missedDay.nudgeUrgent":    "Ohjelma on jäänyt reilusti jälkeen. Paras nollata ja jatkaa eteenpäin.",
		"missedDay.nudgeDeload":    "Nyt on palautusviikko, joten välistä jäänyt päivä ei haittaa. Ohita ja lepää.",

		"missedDay.option.doMissed.label":             "Tee väliin jäänyt treeni tänään",
		"missedDay.option.doMissed.description":       "Ohjelma jatkuu siitä mihin se jäi, ja myöhemmät päivät siirtyvät eteenpäin.",
		"missedDay.option.skipContinue.label":         "Ohita ja jatka ohjelmaa",
		"missedDay.option.skipContinue.description":   "Väliin jäänyt päivä kuitataan ja loppuviikko pysyy aikataulussa.",
		"missedDay.option.merge.label":                "Yhdistä tekemättä jäänyt työ seuraavaan treeniin",
		"missedDay.option.merge.description":          "Seuraavaan treeniin lisätään kevennetty annos väliin jääneitä liikkeitä.",
		"missedDay.option.rescheduleWeek.label":       "Aikatauluta tämän viikon jäljellä olevat treenit uudelleen",
		"missedDay.option.rescheduleWeek.description": "Jokainen jäljellä oleva päivä siirtyy tuleville treenipäivillesi.",
	},
}

// Message resolves a message key, falling back to English and finally to the
// key itself so a missing translation never blanks the UI.
func Message(lang Lang, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[LangEn][key]; ok {
		return msg
	}
	return key
}

// Keys returns every key in the English catalog.
func Keys() []string {
	keys := make([]string, 0, len(messages[LangEn]))
	for key := range messages[LangEn] {
		keys = append(keys, key)
	}
	return keys
}
