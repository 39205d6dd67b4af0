package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
)

const ordersSheet = "Commandes"

var ordersHeader = []string{
	"N°", "Date", "Client", "Téléphone", "Wilaya", "Livraison",
	"Adresse", "Articles", "Total (DA)", "Statut",
}

// OrdersWorkbook renders the given orders into an xlsx workbook for the
// back office. Items are flattened into one cell per order.
func OrdersWorkbook(orders []model.Order) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(ordersSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range ordersHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ordersSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, order := range orders {
		row := i + 2
		values := []interface{}{
			order.ID,
			order.CreatedAt.Format("2006-01-02 15:04"),
			order.CustomerName,
			order.Phone,
			order.Wilaya,
			deliveryLabel(order.DeliveryType),
			order.Address,
			itemsSummary(order.Items),
			order.TotalAmount,
			string(order.Status),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ordersSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

func itemsSummary(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func deliveryLabel(t model.DeliveryType) string {
	if t == model.DeliveryStopDesk {
		return "Stop desk"
	}
	return "Domicile"
}
