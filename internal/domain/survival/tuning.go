package survival

const (
	VitalMax = 100.0

	BaseSpeedTilesPerSec = 4.0
	ShallowSpeedFactor   = 0.5
	ExhaustedSpeedFactor = 0.5

	MoveEnergyCost    = 0.5
	HarvestEnergyCost = 8.0
	PickupEnergyCost  = 2.0

	HungerDecayPerBoundary = 1.0

	RegenCadenceMs     = 100
	RestEnergyStep     = 1.0
	RestHungerStep     = 0.25
	RestEnergyNearCap  = 99.5
	IdleRegenStep      = 0.25
	IdleRegenMinHunger = 50.0

	TreeWoodYield    = 3
	TreeCoconutYield = 1

	CoconutHungerRestore = 20.0
)
