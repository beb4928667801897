package terminal

import (
	"coffeeshop/pkg/domain/model"
)

const (
	welcomeBanner      = "Welcome to Coffeeshop!"
	usernamePrompt     = "Enter username: "
	passwordPrompt     = "Enter password: "
	authFailedMessage  = "Authentication failed. Invalid username or password."
	choicePrompt       = "Enter your choice: "
	invalidChoice      = "Invalid choice. Please try again."
	selectionPrompt    = "Enter the number of the coffee drink to add to the cart (or 0 to finish): "
	quantityPrompt     = "Enter the quantity: "
	itemAdded          = "Item added to the cart."
	invalidSelection   = "Invalid selection. Please try again."
	invalidQuantity    = "Invalid quantity. Please try again."
	emptyCartMessage   = "Cart is empty."
	nothingToConfirm   = "No items in the cart to confirm."
	orderConfirmed     = "Order confirmed. Thank you!"
	receiptHeader      = "Receipt:"
	receiptFooter      = "Thank you for shopping with us!"
	paymentMethodTitle = "Choose payment method:"
)

func (c *Console) renderOptions() {
	c.out.println("")
	c.out.println("Options:")
	c.out.println("1. View menu")
	c.out.println("2. Add to cart")
	c.out.println("3. Show cart items")
	c.out.println("4. Confirm order")
	c.out.println("5. Exit")
	c.out.print(choicePrompt)
}

func (c *Console) renderMenu(items []model.Item) {
	c.out.println("Menu:")
	for i, item := range items {
		c.out.printf("%d. %s - $%s\n", i+1, item.Name, item.Price.StringFixed(2))
	}
}

func (c *Console) renderCart(cart *model.Cart) {
	c.out.println("Cart Items:")
	for _, line := range cart.Lines() {
		c.out.printf("%s x%d - $%s\n", line.Item.Name, line.Quantity, line.LineTotal().StringFixed(2))
	}
	c.out.printf("Total Amount: $%s\n", cart.Total().StringFixed(2))
}

func (c *Console) renderPaymentOptions() {
	c.out.println(paymentMethodTitle)
	c.out.println("1. Cash")
	c.out.println("2. Card")
	c.out.print(choicePrompt)
}

// renderReceipt prints whatever the cart holds at call time.
func (c *Console) renderReceipt(cart *model.Cart) {
	c.out.println(receiptHeader)
	c.renderCart(cart)
	c.out.println(receiptFooter)
}
