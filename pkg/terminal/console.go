package terminal

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"coffeeshop/pkg/domain/model"
	"coffeeshop/pkg/domain/service"
)

const (
	optionViewMenu = iota + 1
	optionAddToCart
	optionShowCart
	optionConfirmOrder
	optionExit
)

// Console drives one session over a text stream.
type Console struct {
	session *service.Session
	in      *input
	out     *output
	logger  log.FieldLogger
}

func NewConsole(session *service.Session, r io.Reader, w io.Writer, logger log.FieldLogger) *Console {
	return &Console{
		session: session,
		in:      newInput(r),
		out:     &output{w: w},
		logger:  logger.WithField("session_id", session.ID().String()),
	}
}

// Run logs in and serves the option loop until the user exits or input ends.
// A failed login is not an error. Malformed numeric input stops the loop with
// an error wrapping ErrMalformedInput.
func (c *Console) Run() error {
	c.out.println(welcomeBanner)
	c.out.print(usernamePrompt)
	username, err := c.in.readLine()
	if err != nil {
		return c.stop(err)
	}
	c.out.print(passwordPrompt)
	password, err := c.in.readLine()
	if err != nil {
		return c.stop(err)
	}

	account, err := c.session.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			c.out.println(authFailedMessage)
			return c.out.err
		}
		return errors.Wrap(err, "authenticate")
	}
	c.out.println("User authenticated. Role: " + account.Role.String())

	return c.loop()
}

func (c *Console) loop() error {
	for c.session.State() == service.Authenticated {
		c.renderOptions()
		if c.out.err != nil {
			return c.out.err
		}

		choice, err := c.in.readInt()
		if err != nil {
			return c.stop(err)
		}
		if _, err := c.in.readLine(); err != nil {
			return c.stop(err)
		}
		c.logger.WithField("choice", choice).Debug("option selected")

		switch choice {
		case optionViewMenu:
			err = c.displayMenu()
		case optionAddToCart:
			err = c.addToCart()
		case optionShowCart:
			c.showCart()
		case optionConfirmOrder:
			err = c.confirmOrder()
		case optionExit:
			c.session.Exit()
		default:
			c.out.println(invalidChoice)
		}
		if err != nil {
			return c.stop(err)
		}
	}
	return c.out.err
}

func (c *Console) displayMenu() error {
	items, err := c.session.Menu()
	if err != nil {
		return errors.Wrap(err, "list menu")
	}
	c.renderMenu(items)
	return nil
}

func (c *Console) addToCart() error {
	for {
		items, err := c.session.Menu()
		if err != nil {
			return errors.Wrap(err, "list menu")
		}
		c.renderMenu(items)
		c.out.print(selectionPrompt)
		if c.out.err != nil {
			return c.out.err
		}

		position, err := c.in.readInt()
		if err != nil {
			return err
		}
		if position == 0 {
			return nil
		}
		if position < 0 || position > len(items) {
			c.out.println(invalidSelection)
			continue
		}

		c.out.print(quantityPrompt)
		quantity, err := c.in.readInt()
		if err != nil {
			return err
		}
		if quantity <= 0 {
			c.out.println(invalidQuantity)
			continue
		}

		if _, err := c.session.AddToCart(position, quantity); err != nil {
			if errors.Is(err, model.ErrItemNotFound) {
				c.out.println(invalidSelection)
				continue
			}
			return errors.Wrap(err, "add to cart")
		}
		c.out.println(itemAdded)
	}
}

func (c *Console) showCart() {
	cart := c.session.Cart()
	if cart.IsEmpty() {
		c.out.println(emptyCartMessage)
		return
	}
	c.renderCart(cart)
}

func (c *Console) choosePaymentMethod() (model.PaymentMethod, error) {
	c.renderPaymentOptions()
	choice, err := c.in.readInt()
	if err != nil {
		return model.Card, err
	}
	return model.ParsePaymentChoice(choice), nil
}

func (c *Console) confirmOrder() error {
	cart := c.session.Cart()
	if cart.IsEmpty() {
		c.out.println(nothingToConfirm)
		return nil
	}
	c.renderCart(cart)

	method, err := c.choosePaymentMethod()
	if err != nil {
		return err
	}

	order, err := c.session.ConfirmOrder(method, func(order *model.Order, cart *model.Cart) error {
		c.out.println("Payment method confirmed: " + order.Method.String())
		c.out.println(orderConfirmed)
		c.renderReceipt(cart)
		return c.out.err
	})
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			c.out.println(nothingToConfirm)
			return nil
		}
		return errors.Wrap(err, "confirm order")
	}

	c.logger.WithFields(log.Fields{
		"order_id": order.ID.String(),
		"method":   order.Method.String(),
		"total":    order.Total.StringFixed(2),
	}).Debug("order receipt printed")
	return nil
}

// stop ends the session. End of input is a normal way out.
func (c *Console) stop(err error) error {
	c.session.Exit()
	if errors.Is(err, io.EOF) {
		c.logger.Debug("input closed")
		return c.out.err
	}
	return err
}
