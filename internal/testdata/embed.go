package testdata

import _ "embed"

//go:embed configs/config.yaml
var TestGenericConfig string
