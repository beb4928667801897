package dispatcher

import (
	log "github.com/sirupsen/logrus"

	"coffeeshop/pkg/domain/model"
	"coffeeshop/pkg/domain/service"
)

var _ service.EventDispatcher = &LoggingDispatcher{}

// LoggingDispatcher writes every domain event as a structured log entry.
type LoggingDispatcher struct {
	logger log.FieldLogger
}

func NewLoggingDispatcher(logger log.FieldLogger) *LoggingDispatcher {
	return &LoggingDispatcher{logger: logger}
}

func (d *LoggingDispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(eventFields(event)).Info("domain event")
	return nil
}

func eventFields(event service.Event) log.Fields {
	fields := log.Fields{"event": event.Type()}

	switch e := event.(type) {
	case model.ItemAddedToCatalog:
		fields["item_id"] = e.ItemID.String()
		fields["name"] = e.Name
		fields["price"] = e.Price.StringFixed(2)
	case model.AccountAdded:
		fields["account_id"] = e.AccountID.String()
		fields["username"] = e.Username
		fields["role"] = e.Role.String()
	case model.UserAuthenticated:
		fields["session_id"] = e.SessionID.String()
		fields["account_id"] = e.AccountID.String()
		fields["username"] = e.Username
		fields["role"] = e.Role.String()
	case model.AuthenticationFailed:
		fields["session_id"] = e.SessionID.String()
		fields["username"] = e.Username
		fields["reason"] = e.Reason
	case model.ItemAddedToCart:
		fields["session_id"] = e.SessionID.String()
		fields["item_id"] = e.ItemID.String()
		fields["name"] = e.Name
		fields["quantity"] = e.Quantity
		fields["new_total"] = e.NewTotal.StringFixed(2)
	case model.OrderConfirmed:
		fields["session_id"] = e.SessionID.String()
		fields["order_id"] = e.OrderID.String()
		fields["account_id"] = e.AccountID.String()
		fields["method"] = e.Method.String()
		fields["total"] = e.Total.StringFixed(2)
		fields["lines"] = e.LineCount
	case model.CartReset:
		fields["session_id"] = e.SessionID.String()
	case model.SessionTerminated:
		fields["session_id"] = e.SessionID.String()
	}
	return fields
}
