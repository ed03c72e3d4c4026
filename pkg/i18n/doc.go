// Package i18n provides reactive message lookup.
//
// A Translator holds the message catalogs of every locale and the current
// locale as a signal. T reads that signal, so an effect or component render
// that translates a key re-runs when the locale changes:
//
//	tr, _ := i18n.New(rt, i18n.Data{
//	    "en": {"greeting": "Hello", "nav": i18n.Messages{"home": "Home"}},
//	    "fr": {"greeting": "Bonjour", "nav": i18n.Messages{"home": "Accueil"}},
//	})
//	tr.T("nav.home") // "Home"
//	tr.SetLocale("fr")
//
// Keys are looked up as written first and then as dotted paths through
// nested catalogs. A key missing from the current locale falls back to the
// default locale, then to the key itself.
package i18n
