// Package i18n holds the message catalog for the form and result pages.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the page languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(Supported)

// English text doubles as the lookup key.
var japanese = [][2]string{
	{"Iris classifier", "アヤメの品種判定"},
	{"Enter the measurements of the flower.", "花の寸法を入力してください。"},
	{"Classify", "判定"},
	{"Result", "判定結果"},
	{"The flower is", "この花の品種は"},
	{"Back", "戻る"},
	{"Sepal length (0cm ~ 10cm)", "がくの長さ (0cm ~ 10cm)"},
	{"Sepal width (0cm ~ 5cm)", "がくの幅 (0cm ~ 5cm)"},
	{"Petal length (0cm ~ 10cm)", "花弁の長さ (0cm ~ 10cm)"},
	{"Petal width (0cm ~ 5cm)", "花弁の幅 (0cm ~ 5cm)"},
	{"This field is required.", "この項目は必須です。"},
	{"Not a valid float value.", "数値を入力してください。"},
	{"Please enter a number between %d and %d.", "%d〜%dの数値を入力してください"},
	{"Classification failed. Please try again later.", "判定に失敗しました。しばらくしてから再度お試しください。"},
	{"The request could not be read.", "リクエストを読み取れませんでした。"},
}

func init() {
	for _, pair := range japanese {
		if err := message.SetString(language.English, pair[0], pair[0]); err != nil {
			panic(err)
		}
		if err := message.SetString(language.Japanese, pair[0], pair[1]); err != nil {
			panic(err)
		}
	}
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Printer returns a message printer for an Accept-Language header.
func Printer(acceptLanguage string) *message.Printer {
	return message.NewPrinter(Match(acceptLanguage))
}
