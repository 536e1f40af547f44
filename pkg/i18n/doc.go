// Package i18n translates UI messages.
//
// Catalogs are YAML files keyed by language code at the top level, with
// nested maps addressed by dotted keys:
//
//	en:
//	  contact:
//	    toast:
//	      fallback: "Opening your email client..."
//
// Load them from an embed.FS with NewTranslatorFS, install Middleware to put
// the request language into the context, and translate with Tc or Td.
// Missing keys fall back to the default language and then to the key or the
// supplied default.
package i18n
