package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel writes every order as a spreadsheet download.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderNumber", "Customer", "Email", "Status", "TotalAmount",
			"Items", "City", "Country", "OrderDate", "ShippedDate", "DeliveredDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		const dateFormat = "2006-01-02 15:04:05"
		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.ShippingCity)
			row.AddCell().SetValue(o.ShippingCountry)
			row.AddCell().SetValue(o.OrderDate.Format(dateFormat))
			if o.ShippedDate != nil {
				row.AddCell().SetValue(o.ShippedDate.Format(dateFormat))
			} else {
				row.AddCell().SetValue("")
			}
			if o.DeliveredDate != nil {
				row.AddCell().SetValue(o.DeliveredDate.Format(dateFormat))
			} else {
				row.AddCell().SetValue("")
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
