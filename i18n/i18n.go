package i18n

import (
	"fmt"
	"log"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang = "en"

var supported = []string{"ko", "pt", "es"}

var translations = map[string]map[string]string{
	"Dice": {
		"ko": "주사위",
		"pt": "Dados",
		"es": "Dados",
	},
	"Stopwatch": {
		"ko": "스톱워치",
		"pt": "Cronômetro",
		"es": "Cronómetro",
	},
	"Number of dice:": {
		"ko": "주사위 개수:",
		"pt": "Número de dados:",
		"es": "Número de dados:",
	},
	"1 die": {
		"ko": "1개",
		"pt": "1 dado",
		"es": "1 dado",
	},
	"2 dice": {
		"ko": "2개",
		"pt": "2 dados",
		"es": "2 dados",
	},
	"Roll dice": {
		"ko": "주사위 굴리기",
		"pt": "Rolar dados",
		"es": "Tirar dados",
	},
	"Rolling...": {
		"ko": "굴리는 중...",
		"pt": "Rolando...",
		"es": "Tirando...",
	},
	"Sum: %d": {
		"ko": "합계: %d",
		"pt": "Soma: %d",
		"es": "Suma: %d",
	},
	"Start": {
		"ko": "시작",
		"pt": "Iniciar",
		"es": "Iniciar",
	},
	"Stop": {
		"ko": "정지",
		"pt": "Parar",
		"es": "Parar",
	},
	"Reset": {
		"ko": "리셋",
		"pt": "Resetar",
		"es": "Reiniciar",
	},
	"min:sec.1/100": {
		"ko": "분:초.1/100초",
		"pt": "min:seg.1/100",
		"es": "min:seg.1/100",
	},
	"%d seconds remaining until minute boundary": {
		"ko": "1분까지 %d초 남음",
		"pt": "%d segundos até o próximo minuto",
		"es": "%d segundos para el próximo minuto",
	},
	"%d seconds remaining until minute boundary! (warning)": {
		"ko": "1분까지 %d초 남음! (경고)",
		"pt": "%d segundos até o próximo minuto! (alerta)",
		"es": "¡%d segundos para el próximo minuto! (alerta)",
	},
}

// Setup selects the UI language. A non-empty forced value wins over the
// system locale.
func Setup(forced string) {
	if forced = strings.TrimSpace(forced); forced != "" {
		log.Printf("BOARDGAME_LANG is set to: '%s'", forced)
		lang = match(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
		return
	}

	log.Printf("Detected user locale: %s", userLocales[0])
	lang = match(userLocales[0])
	log.Printf("Language set to: %s", lang)
}

func match(tag string) string {
	for _, l := range supported {
		if strings.HasPrefix(strings.ToLower(tag), l) {
			return l
		}
	}
	return "en"
}

// T translates key into the current language, falling back to key.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// Tf translates a format key and applies args.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}
