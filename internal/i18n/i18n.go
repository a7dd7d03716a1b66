// Package i18n translates user-facing API messages.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once

	// supported lists the locales with messages. The first entry is the fallback.
	supported = []language.Tag{language.English, language.Turkish}
	matcher   = language.NewMatcher(supported)
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Unknown locales and missing keys fall back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// ParseLocale matches an Accept-Language value against the supported locales.
func ParseLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// GetLocale extracts the locale from the Accept-Language header of the request.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// Tag returns the language tag of a locale, for locale-aware number formatting.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyValidation:         "Request validation failed",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyNotFound:           "Not found",
			ErrKeyProductNotFound:    "Product not found",
			ErrKeyProformaNotFound:   "Proforma not found",
			ErrKeyDuplicateProduct:   "A product with this ID already exists",
			ErrKeyInvalidProduct:     "Product data is invalid",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyTimeout:            "Request timed out",
			ErrKeyServiceUnavailable: "Service temporarily unavailable",
			ErrKeyCatalogUnavailable: "Product catalog is unavailable",
			ErrKeyFileRequired:       "A spreadsheet file is required",
			ErrKeyFileTooLarge:       "The uploaded file is too large",
			ErrKeyInvalidSpreadsheet: "The file is not a readable catalog spreadsheet",
			ErrKeyExportFailed:       "The workbook could not be generated",
		},
		"tr": {
			ErrKeyInvalidRequest:     "Geçersiz istek",
			ErrKeyInvalidRequestBody: "Geçersiz istek gövdesi",
			ErrKeyValidation:         "İstek doğrulaması başarısız",
			ErrKeyInternalError:      "Beklenmeyen bir hata oluştu",
			ErrKeyNotFound:           "Bulunamadı",
			ErrKeyProductNotFound:    "Ürün bulunamadı",
			ErrKeyProformaNotFound:   "Proforma bulunamadı",
			ErrKeyDuplicateProduct:   "Bu koda sahip bir ürün zaten var",
			ErrKeyInvalidProduct:     "Ürün bilgileri geçersiz",
			ErrKeyRateLimitExceeded:  "Çok fazla istek, lütfen daha sonra tekrar deneyin",
			ErrKeyConflict:           "Çakışma",
			ErrKeyTimeout:            "İstek zaman aşımına uğradı",
			ErrKeyServiceUnavailable: "Servis geçici olarak kullanılamıyor",
			ErrKeyCatalogUnavailable: "Ürün kataloğuna ulaşılamıyor",
			ErrKeyFileRequired:       "Bir tablo dosyası gerekli",
			ErrKeyFileTooLarge:       "Yüklenen dosya çok büyük",
			ErrKeyInvalidSpreadsheet: "Dosya okunabilir bir katalog tablosu değil",
			ErrKeyExportFailed:       "Çalışma kitabı oluşturulamadı",
		},
	}
}
