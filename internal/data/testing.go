package data

// MustLoadCatalogs loads the embedded catalogs and panics on failure.
// Intended for TestMain in packages that need catalog data.
func MustLoadCatalogs() {
	if err := LoadCatalogs(); err != nil {
		panic("load catalogs: " + err.Error())
	}
}
