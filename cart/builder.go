package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"coaxdirect/models"
	"coaxdirect/utils"
)

// Build converts a validated, priced configuration into a cart line item.
// The builder has no side effects — it does not add to any cart; the cart
// collaborator owns persistence, totals and payment.
//
// The generated id only needs to be unique enough to avoid cart key
// collisions within a session (one per add-to-cart click), so a millisecond
// timestamp plus a short random suffix is sufficient.
func Build(config *models.Configuration, cableType models.CableType, connector1, connector2 models.Connector, unitPrice float64) models.LineItem {
	name := fmt.Sprintf("Custom Cable: %s to %s, %d ft %s",
		connector1.Name, connector2.Name, config.LengthInFeet, cableType.Name)

	quantity := config.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	id := fmt.Sprintf("custom-cable-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])

	return models.LineItem{
		ID:       id,
		Name:     name,
		Price:    utils.ToMinorUnits(unitPrice),
		Currency: "usd",
		Image:    cableType.Image,
		Quantity: quantity,
		Metadata: map[string]interface{}{
			"isCustom":        true,
			"cableSeriesSlug": config.CableSeriesSlug,
			"cableTypeSlug":   cableType.Slug,
			"cableTypeName":   cableType.Name,
			"connector1Slug":  connector1.Slug,
			"connector1Name":  connector1.Name,
			"connector2Slug":  connector2.Slug,
			"connector2Name":  connector2.Name,
			"lengthInFeet":    config.LengthInFeet,
		},
	}
}
