package mongodb

import (
	"time"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
)

// IDs are stored as canonical UUID strings so documents stay readable in the shell.

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type restaurantDocument struct {
	ID           string    `bson:"_id"`
	OwnerID      string    `bson:"owner_id"`
	Name         string    `bson:"name"`
	Address      string    `bson:"address"`
	Phone        string    `bson:"phone"`
	LogoURL      string    `bson:"logo_url"`
	Description  string    `bson:"description"`
	Cuisine      string    `bson:"cuisine"`
	Rating       float64   `bson:"rating"`
	DeliveryTime string    `bson:"delivery_time"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type menuItemDocument struct {
	ID           string    `bson:"_id"`
	RestaurantID string    `bson:"restaurant_id"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description"`
	Price        float64   `bson:"price"`
	Category     string    `bson:"category"`
	ImageURL     string    `bson:"image_url"`
	IsAvailable  bool      `bson:"is_available"`
	IsVegetarian bool      `bson:"is_vegetarian"`
	IsSpicy      bool      `bson:"is_spicy"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// cartDocument is keyed by the customer ID.
type cartDocument struct {
	CustomerID string             `bson:"_id"`
	Items      []cartLineDocument `bson:"items"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type cartLineDocument struct {
	MenuItemID string `bson:"menu_item_id"`
	Quantity   int    `bson:"quantity"`
}

type orderDocument struct {
	ID              string              `bson:"_id"`
	CustomerID      string              `bson:"customer_id"`
	RestaurantID    string              `bson:"restaurant_id"`
	Items           []orderLineDocument `bson:"items"`
	TotalAmount     float64             `bson:"total_amount"`
	DeliveryAddress string              `bson:"delivery_address"`
	PaymentMethod   string              `bson:"payment_method"`
	Notes           string              `bson:"notes"`
	Status          string              `bson:"status"`
	CreatedAt       time.Time           `bson:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at"`
}

type orderLineDocument struct {
	MenuItemID string  `bson:"menu_item_id"`
	Name       string  `bson:"name"`
	Quantity   int     `bson:"quantity"`
	Price      float64 `bson:"price"`
}

type deviceDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	FCMToken  string    `bson:"fcm_token"`
	DeviceID  string    `bson:"device_id"`
	Platform  string    `bson:"platform"`
	IsActive  bool      `bson:"is_active"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// newID returns a time-ordered ID, matching the relational backend.
func newID() (uuid.UUID, error) {
	return uuid.NewV7()
}

// parseID ignores malformed values; documents are only written by this package.
func parseID(raw string) uuid.UUID {
	id, _ := uuid.Parse(raw)

	return id
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// --- Mapper Functions ---

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		ID:           parseID(doc.ID),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         entity.Role(doc.Role),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toRestaurantDomain(doc *restaurantDocument) *entity.Restaurant {
	return &entity.Restaurant{
		ID:           parseID(doc.ID),
		OwnerID:      parseID(doc.OwnerID),
		Name:         doc.Name,
		Address:      doc.Address,
		Phone:        doc.Phone,
		LogoURL:      doc.LogoURL,
		Description:  doc.Description,
		Cuisine:      doc.Cuisine,
		Rating:       doc.Rating,
		DeliveryTime: doc.DeliveryTime,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromRestaurantDomain(r *entity.Restaurant) *restaurantDocument {
	return &restaurantDocument{
		ID:           r.ID.String(),
		OwnerID:      r.OwnerID.String(),
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		LogoURL:      r.LogoURL,
		Description:  r.Description,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		DeliveryTime: r.DeliveryTime,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toMenuItemDomain(doc *menuItemDocument) *entity.MenuItem {
	return &entity.MenuItem{
		ID:           parseID(doc.ID),
		RestaurantID: parseID(doc.RestaurantID),
		Name:         doc.Name,
		Description:  doc.Description,
		Price:        doc.Price,
		Category:     doc.Category,
		ImageURL:     doc.ImageURL,
		IsAvailable:  doc.IsAvailable,
		IsVegetarian: doc.IsVegetarian,
		IsSpicy:      doc.IsSpicy,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromMenuItemDomain(item *entity.MenuItem) *menuItemDocument {
	return &menuItemDocument{
		ID:           item.ID.String(),
		RestaurantID: item.RestaurantID.String(),
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Category:     item.Category,
		ImageURL:     item.ImageURL,
		IsAvailable:  item.IsAvailable,
		IsVegetarian: item.IsVegetarian,
		IsSpicy:      item.IsSpicy,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toCartDomain(doc *cartDocument) *entity.Cart {
	cart := entity.NewEmptyCart(parseID(doc.CustomerID))
	cart.UpdatedAt = doc.UpdatedAt

	for _, line := range doc.Items {
		cart.Items = append(cart.Items, entity.CartItem{
			MenuItemID: parseID(line.MenuItemID),
			Quantity:   line.Quantity,
		})
	}

	return cart
}

func toOrderDomain(doc *orderDocument) *entity.Order {
	items := make([]entity.OrderItem, 0, len(doc.Items))
	for _, line := range doc.Items {
		items = append(items, entity.OrderItem{
			MenuItemID: parseID(line.MenuItemID),
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	return &entity.Order{
		ID:              parseID(doc.ID),
		CustomerID:      parseID(doc.CustomerID),
		RestaurantID:    parseID(doc.RestaurantID),
		Items:           items,
		TotalAmount:     doc.TotalAmount,
		DeliveryAddress: doc.DeliveryAddress,
		PaymentMethod:   doc.PaymentMethod,
		Notes:           doc.Notes,
		Status:          entity.OrderStatus(doc.Status),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

func fromOrderDomain(order *entity.Order) *orderDocument {
	items := make([]orderLineDocument, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, orderLineDocument{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	return &orderDocument{
		ID:              order.ID.String(),
		CustomerID:      order.CustomerID.String(),
		RestaurantID:    order.RestaurantID.String(),
		Items:           items,
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		Notes:           order.Notes,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func toDeviceDomain(doc *deviceDocument) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        parseID(doc.ID),
		UserID:    parseID(doc.UserID),
		FCMToken:  doc.FCMToken,
		DeviceID:  doc.DeviceID,
		Platform:  doc.Platform,
		IsActive:  doc.IsActive,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.UserDevice) *deviceDocument {
	return &deviceDocument{
		ID:        device.ID.String(),
		UserID:    device.UserID.String(),
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
