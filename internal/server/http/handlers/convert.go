package handlers

import (
	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/server/http/dto"
)

func toDrinkResponse(d model.Drink) dto.DrinkResponse {
	return dto.DrinkResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		BasePrice:   d.BasePrice.StringFixed(2),
	}
}

func toSizeResponse(s model.Size) dto.SizeResponse {
	return dto.SizeResponse{ID: s.ID, Name: s.Name, PriceMultiplier: s.PriceMultiplier.String()}
}

func toFlavorResponse(f model.Flavor) dto.FlavorResponse {
	return dto.FlavorResponse{ID: f.ID, Name: f.Name, AdditionalPrice: f.AdditionalPrice.StringFixed(2)}
}

func toToppingResponses(toppings []model.Topping) []dto.ToppingResponse {
	response := make([]dto.ToppingResponse, 0, len(toppings))
	for _, t := range toppings {
		response = append(response, dto.ToppingResponse{ID: t.ID, Name: t.Name, Price: t.Price.StringFixed(2)})
	}
	return response
}

func toMenuResponse(menu *model.Menu) dto.MenuResponse {
	response := dto.MenuResponse{
		Drinks:   make([]dto.DrinkResponse, 0, len(menu.Drinks)),
		Sizes:    make([]dto.SizeResponse, 0, len(menu.Sizes)),
		Flavors:  make([]dto.FlavorResponse, 0, len(menu.Flavors)),
		Toppings: toToppingResponses(menu.Toppings),
	}
	for _, d := range menu.Drinks {
		response.Drinks = append(response.Drinks, toDrinkResponse(d))
	}
	for _, s := range menu.Sizes {
		response.Sizes = append(response.Sizes, toSizeResponse(s))
	}
	for _, f := range menu.Flavors {
		response.Flavors = append(response.Flavors, toFlavorResponse(f))
	}
	return response
}

func toSelectionResponse(review *model.Review) dto.SelectionResponse {
	line := review.Selection.Line
	response := dto.SelectionResponse{
		Drink:         toDrinkResponse(line.Drink),
		Size:          toSizeResponse(line.Size),
		Toppings:      toToppingResponses(line.Toppings),
		Quantity:      line.Quantity,
		UnitPrice:     review.Quote.Unit.StringFixed(2),
		ItemPrice:     review.Quote.Total.StringFixed(2),
		PaymentMethod: string(review.Selection.PaymentMethod),
	}
	if line.Flavor != nil {
		flavor := toFlavorResponse(*line.Flavor)
		response.Flavor = &flavor
	}
	return response
}

func toSelectionInput(req dto.SelectionRequest) model.SelectionInput {
	in := model.SelectionInput{
		DrinkID:    req.DrinkID,
		SizeID:     req.SizeID,
		ToppingIDs: req.Toppings,
		Quantity:   1,
	}
	if req.FlavorID != nil && *req.FlavorID != 0 {
		id := *req.FlavorID
		in.FlavorID = &id
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	return in
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	response := dto.OrderResponse{
		Number:      order.Number,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		Items:       make([]dto.OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		toppings := make([]string, 0, len(item.Toppings))
		for _, t := range item.Toppings {
			toppings = append(toppings, t.Name)
		}
		entry := dto.OrderItemResponse{
			Drink:     item.Drink.Name,
			Size:      item.Size.Name,
			Toppings:  toppings,
			Quantity:  item.Quantity,
			ItemPrice: item.ItemPrice.StringFixed(2),
		}
		if item.Flavor != nil {
			name := item.Flavor.Name
			entry.Flavor = &name
		}
		response.Items = append(response.Items, entry)
	}
	if p := order.Payment; p != nil {
		response.Payment = &dto.PaymentResponse{
			Method:        string(p.Method),
			Amount:        p.Amount.StringFixed(2),
			Status:        string(p.Status),
			TransactionID: p.TransactionID,
			CreatedAt:     p.CreatedAt,
		}
	}
	return response
}
