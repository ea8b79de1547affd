// Package data bundles the static travel networks shipped with the router.
package data

import _ "embed"

// PhantomForestJSON is the hand-curated Phantom Forest edge list.
//
//go:embed phantom_forest.json
var PhantomForestJSON []byte

// PhantomForestName is the file name the embedded dataset is reported under.
const PhantomForestName = "phantom_forest.json"
