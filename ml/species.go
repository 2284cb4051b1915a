package ml

// UnknownSpecies is shown when the model returns a label outside the known set.
const UnknownSpecies = "Error"

var speciesNames = map[int]string{
	0: "Iris Setosa",
	1: "Iris Versicolor",
	2: "Iris Virginica",
}

func SpeciesName(label int) string {
	if name, ok := speciesNames[label]; ok {
		return name
	}
	return UnknownSpecies
}
