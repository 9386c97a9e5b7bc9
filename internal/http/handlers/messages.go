package handlers

// messageCatalog holds localized translations of the user-facing strings in
// the error envelope. The wire "error" field stays English so clients can
// match on it; translations ride alongside in "message".
var messageCatalog = map[string]map[string]string{
	"id": {
		"invalid payload":   "payload tidak valid",
		"idea required":     "ide wajib diisi",
		"job id required":   "id pekerjaan wajib diisi",
		"job not completed": "pekerjaan belum selesai",
		"not found":         "tidak ditemukan",
		"internal error":    "kesalahan internal",
	},
	"es": {
		"invalid payload":   "payload no válido",
		"idea required":     "se requiere una idea",
		"job id required":   "se requiere el id del trabajo",
		"job not completed": "el trabajo no está completado",
		"not found":         "no encontrado",
		"internal error":    "error interno",
	},
}

// localizeMessage returns the translation for msg in the given locale, or msg
// itself when no translation exists.
func localizeMessage(locale, msg string) string {
	if translations, ok := messageCatalog[locale]; ok {
		if v, ok := translations[msg]; ok {
			return v
		}
	}
	return msg
}
