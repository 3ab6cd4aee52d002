package model

import "math"

// LoadEstimate holds the results of a container purchasing calculation.
type LoadEstimate struct {
	CargoVolume          int     `json:"cargo_volume"`           // Total volume of all boxes
	CargoWeight          int     `json:"cargo_weight"`           // Total weight of all boxes
	ContainerVolume      int     `json:"container_volume"`       // Volume of one container
	ContainersExact      float64 `json:"containers_exact"`       // Exact fractional number of containers
	ContainersMin        int     `json:"containers_min"`         // Minimum containers (ceiling of exact)
	ContainersWithWaste  int     `json:"containers_with_waste"`  // Recommended containers including waste factor
	WastePercent         float64 `json:"waste_percent"`          // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost        float64 `json:"estimated_cost"`         // Total cost if pricing available
	PricePerContainer    float64 `json:"price_per_container"`    // Price used for estimation
	ExpectedFillPercent  float64 `json:"expected_fill_percent"`  // Cargo volume over booked container volume
}

// CalculateLoadEstimate computes how many containers to book for a cargo
// list. Perfect packing never reaches 100% fill, so the waste percentage
// pads the volume-based lower bound.
func CalculateLoadEstimate(boxes []BoxQuantity, containerL, containerW, containerH int, wastePercent, pricePerContainer float64) LoadEstimate {
	var cargoVolume, cargoWeight int
	for _, bq := range boxes {
		cargoVolume += bq.Type.Volume() * bq.Quantity
		cargoWeight += bq.Type.Weight * bq.Quantity
	}

	containerVolume := containerL * containerW * containerH
	if containerVolume <= 0 {
		return LoadEstimate{
			CargoVolume:  cargoVolume,
			CargoWeight:  cargoWeight,
			WastePercent: wastePercent,
		}
	}

	exact := float64(cargoVolume) / float64(containerVolume)
	minContainers := int(math.Ceil(exact))

	wasteFactor := 1.0 + wastePercent/100.0
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minContainers {
		withWaste = minContainers
	}

	fill := 0.0
	if withWaste > 0 {
		fill = float64(cargoVolume) / float64(containerVolume*withWaste) * 100.0
	}

	return LoadEstimate{
		CargoVolume:         cargoVolume,
		CargoWeight:         cargoWeight,
		ContainerVolume:     containerVolume,
		ContainersExact:     exact,
		ContainersMin:       minContainers,
		ContainersWithWaste: withWaste,
		WastePercent:        wastePercent,
		EstimatedCost:       float64(withWaste) * pricePerContainer,
		PricePerContainer:   pricePerContainer,
		ExpectedFillPercent: fill,
	}
}
