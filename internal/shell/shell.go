package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/furfect/inventory-service/internal/inventory"
	invdto "github.com/furfect/inventory-service/internal/inventory/dto"
	"github.com/furfect/inventory-service/internal/model"
	"github.com/furfect/inventory-service/internal/sales"
	"github.com/furfect/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// Shell is the line-oriented menu loop. It owns parsing and formatting;
// every business decision is delegated to the use cases, which report back
// through sentinel errors.
type Shell struct {
	inventory inventory.UseCase
	sales     sales.UseCase
	in        *bufio.Scanner
	out       io.Writer
	logger    logger.ZapLogger
}

func New(inv inventory.UseCase, sl sales.UseCase, in io.Reader, out io.Writer, log logger.ZapLogger) *Shell {
	return &Shell{
		inventory: inv,
		sales:     sl,
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    log,
	}
}

func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "******************************************")
	fmt.Fprintln(s.out, "    Hi! Welcome to Furfect Supplies")
	fmt.Fprintln(s.out, "   Our Pet Product Inventory System!")
	fmt.Fprintln(s.out, "******************************************")

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "=== Pet Inventory Management System ===")
		fmt.Fprintln(s.out, "  1. Add Product")
		fmt.Fprintln(s.out, "  2. View Inventory")
		fmt.Fprintln(s.out, "  3. Remove Product")
		fmt.Fprintln(s.out, "  4. Update Stock")
		fmt.Fprintln(s.out, "  5. Purchase Products")
		fmt.Fprintln(s.out, "  6. View Sales")
		fmt.Fprintln(s.out, "  7. Exit")

		choice, ok := s.promptLine("Enter your choice: ")
		if !ok {
			return nil // input closed
		}

		var err error
		switch choice {
		case "1":
			err = s.addProduct(ctx)
		case "2":
			err = s.viewInventory(ctx)
		case "3":
			err = s.removeProduct(ctx)
		case "4":
			err = s.updateStock(ctx)
		case "5":
			err = s.purchaseProducts(ctx)
		case "6":
			err = s.viewSales(ctx)
		case "7":
			fmt.Fprintln(s.out, "Exiting the program. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}

		if err != nil {
			s.logger.Error("operation failed", zap.String("choice", choice), zap.Error(err))
			fmt.Fprintf(s.out, "Something went wrong: %v\n", err)
		}
	}
}

func (s *Shell) addProduct(ctx context.Context) error {
	name, ok := s.promptLine("Enter product name: ")
	if !ok {
		return nil
	}
	category, ok := s.promptLine("Enter product category: ")
	if !ok {
		return nil
	}
	price, ok := s.promptFloat("Enter product price: ")
	if !ok {
		return nil
	}
	stock, ok := s.promptInt("Enter initial stock: ")
	if !ok {
		return nil
	}
	reorder, ok := s.promptInt("Enter reorder level: ")
	if !ok {
		return nil
	}

	p, err := s.inventory.AddProduct(ctx, &invdto.AddProductInput{
		Name:         name,
		Category:     category,
		Price:        price,
		Stock:        stock,
		ReorderLevel: reorder,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Product '%s' added successfully!\n", p.Name)
	return nil
}

func (s *Shell) viewInventory(ctx context.Context) error {
	products, err := s.inventory.ListProducts(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "-------------------")
	fmt.Fprintln(s.out, "     INVENTORY     ")
	fmt.Fprintln(s.out, "-------------------")
	for i := range products {
		fmt.Fprintln(s.out, FormatProduct(&products[i]))
	}
	return nil
}

func (s *Shell) removeProduct(ctx context.Context) error {
	if err := s.viewInventory(ctx); err != nil {
		return err
	}

	id, ok := s.promptInt64("Enter the product ID to remove: ")
	if !ok {
		return nil
	}

	p, err := s.inventory.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			fmt.Fprintln(s.out, "Invalid product ID.")
			return nil
		}
		return err
	}

	confirm, ok := s.promptLine(fmt.Sprintf("Sure to remove '%s'? (y/n): ", p.Name))
	if !ok {
		return nil
	}
	if strings.ToLower(confirm) != "y" {
		fmt.Fprintln(s.out, "Operation canceled.")
		return nil
	}

	if err := s.inventory.RemoveProduct(ctx, id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			fmt.Fprintln(s.out, "Invalid product ID.")
			return nil
		}
		return err
	}

	fmt.Fprintf(s.out, "Product '%s' has been removed from inventory.\n", p.Name)
	return nil
}

func (s *Shell) updateStock(ctx context.Context) error {
	if err := s.viewInventory(ctx); err != nil {
		return err
	}

	id, ok := s.promptInt64("Enter the product ID to update stock: ")
	if !ok {
		return nil
	}
	quantity, ok := s.promptInt("Enter the quantity to add: ")
	if !ok {
		return nil
	}

	p, err := s.inventory.Restock(ctx, id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProductNotFound):
			fmt.Fprintln(s.out, "Invalid product ID.")
			return nil
		case errors.Is(err, model.ErrInsufficientStock):
			fmt.Fprintln(s.out, "Adjustment refused: stock cannot go below zero.")
			return nil
		}
		return err
	}

	fmt.Fprintf(s.out, "Stock for '%s' updated to %d.\n", p.Name, p.Stock)
	return nil
}

func (s *Shell) purchaseProducts(ctx context.Context) error {
	if err := s.viewInventory(ctx); err != nil {
		return err
	}

	cart := s.sales.NewCart()

	// Cart building: sentinel 0 moves on to review.
	for {
		id, ok := s.promptInt64("ID to purchase (0 to checkout): ")
		if !ok {
			return nil
		}
		if id == 0 {
			break
		}

		p, err := s.inventory.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrProductNotFound) {
				fmt.Fprintln(s.out, "Invalid product ID.")
				continue
			}
			return err
		}

		quantity, ok := s.promptInt(fmt.Sprintf("Quantity for '%s': ", p.Name))
		if !ok {
			return nil
		}

		if _, err := s.sales.AddToCart(ctx, cart, id, quantity); err != nil {
			switch {
			case errors.Is(err, model.ErrProductNotFound):
				fmt.Fprintln(s.out, "Invalid product ID.")
				continue
			case errors.Is(err, model.ErrInsufficientStock):
				fmt.Fprintln(s.out, "Insufficient stock for this purchase.")
				continue
			}
			return err
		}
	}

	if cart.Empty() {
		fmt.Fprintln(s.out, "No items in the cart.")
		fmt.Fprintln(s.out, "Returning to the main menu...")
		return nil
	}

	// Review.
	summary := s.sales.ReviewCart(cart)
	fmt.Fprintln(s.out, "-----------------")
	fmt.Fprintln(s.out, "      CART     ")
	fmt.Fprintln(s.out, "-----------------")
	for _, line := range summary.Lines {
		fmt.Fprintf(s.out, "'%s'\n", line.Item.Name)
		fmt.Fprintf(s.out, "Quantity: %d\n", line.Item.Quantity)
		fmt.Fprintf(s.out, "Unit Price: $%.2f\n", line.Item.UnitPrice)
		fmt.Fprintf(s.out, "Item Total: $%.2f\n", line.LineTotal)
	}
	fmt.Fprintf(s.out, "\nTotal Amount: $%.2f\n", summary.GrandTotal)

	fmt.Fprintln(s.out, "1. Proceed to Checkout")
	fmt.Fprintln(s.out, "2. Cancel Transaction")
	choice, ok := s.promptLine("Enter your choice: ")
	if !ok {
		return nil
	}

	switch choice {
	case "1":
		payment, ok := s.promptFloat("Enter payment amount: ")
		if !ok {
			return nil
		}

		result, err := s.sales.Checkout(ctx, cart, payment)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrInsufficientPayment):
				fmt.Fprintln(s.out, "Insufficient money. Transaction canceled.")
				return nil
			case errors.Is(err, model.ErrInsufficientStock):
				fmt.Fprintln(s.out, "Insufficient stock for this purchase. Transaction canceled.")
				return nil
			}
			return err
		}

		fmt.Fprintf(s.out, "Purchase successful! Change: $%.2f\n", result.Change)
		fmt.Fprintf(s.out, "Receipt: %s\n", result.ReceiptID)
		fmt.Fprintln(s.out, "All items purchased successfully!")
	case "2":
		fmt.Fprintln(s.out, "Transaction canceled. Returning to the main menu...")
	default:
		fmt.Fprintln(s.out, "Invalid choice. Returning to the main menu...")
	}
	return nil
}

func (s *Shell) viewSales(ctx context.Context) error {
	records, err := s.sales.ListSales(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "-------------------")
	fmt.Fprintln(s.out, "       SALES      ")
	fmt.Fprintln(s.out, "-------------------")
	for i := range records {
		fmt.Fprintln(s.out, FormatSaleRecord(&records[i]))
	}
	return nil
}

// FormatProduct renders one inventory line, flagging low stock.
func FormatProduct(p *model.Product) string {
	warning := ""
	if p.LowStock() {
		warning = " (Low Stock)"
	}
	return fmt.Sprintf("ID: %d | Name: %s | Category: %s | Price: $%.2f | Stock: %d%s",
		p.ID, p.Name, p.Category, p.Price, p.Stock, warning)
}

// FormatSaleRecord renders one sales-history line. Sales whose product has
// been deleted keep their row and show a placeholder name.
func FormatSaleRecord(r *model.SaleRecord) string {
	name := "(deleted product)"
	if r.ProductName != nil {
		name = *r.ProductName
	}
	return fmt.Sprintf("Sale ID: %d | Product: %s | Quantity: %d | Total Price: $%.2f | Date: %s",
		r.ID, name, r.Quantity, r.TotalPrice, r.SaleDate)
}

// prompt helpers. Non-numeric input re-prompts here; the use cases only
// ever see parsed values. ok is false once input is exhausted.

func (s *Shell) promptLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) promptInt(prompt string) (int, bool) {
	for {
		text, ok := s.promptLine(prompt)
		if !ok {
			return 0, false
		}
		if v, err := strconv.Atoi(text); err == nil {
			return v, true
		}
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid integer.")
	}
}

func (s *Shell) promptInt64(prompt string) (int64, bool) {
	for {
		text, ok := s.promptLine(prompt)
		if !ok {
			return 0, false
		}
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return v, true
		}
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid integer.")
	}
}

func (s *Shell) promptFloat(prompt string) (float64, bool) {
	for {
		text, ok := s.promptLine(prompt)
		if !ok {
			return 0, false
		}
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			return v, true
		}
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
	}
}
