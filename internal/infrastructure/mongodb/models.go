package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HailNail/MindArc/internal/domain/entities"
)

type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	GoogleID  string             `bson:"google_id,omitempty"`
	IsAdmin   bool               `bson:"is_admin"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type CategoryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID string             `bson:"category_id"`
	Name       string             `bson:"name"`
}

type ProductDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ProductID    string             `bson:"product_id"`
	Name         string             `bson:"name"`
	Image        string             `bson:"image"`
	Brand        string             `bson:"brand"`
	Quantity     int                `bson:"quantity"`
	CategoryID   string             `bson:"category_id"`
	Description  string             `bson:"description"`
	Rating       float64            `bson:"rating"`
	NumReviews   int                `bson:"num_reviews"`
	Reviews      []ReviewDocument   `bson:"reviews"`
	Price        float64            `bson:"price"`
	CountInStock int                `bson:"count_in_stock"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type ReviewDocument struct {
	ReviewID  string    `bson:"review_id"`
	Name      string    `bson:"name"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}

type OrderDocument struct {
	ID              primitive.ObjectID      `bson:"_id,omitempty"`
	OrderID         string                  `bson:"order_id"`
	UserID          string                  `bson:"user_id"`
	Items           []OrderItemDocument     `bson:"items"`
	ShippingAddress ShippingAddressDocument `bson:"shipping_address"`
	PaymentMethod   string                  `bson:"payment_method"`
	ItemsPrice      float64                 `bson:"items_price"`
	ShippingPrice   float64                 `bson:"shipping_price"`
	TaxPrice        float64                 `bson:"tax_price"`
	TotalPrice      float64                 `bson:"total_price"`
	IsPaid          bool                    `bson:"is_paid"`
	PaidAt          *time.Time              `bson:"paid_at,omitempty"`
	PaymentResult   *PaymentResultDocument  `bson:"payment_result,omitempty"`
	IsDelivered     bool                    `bson:"is_delivered"`
	DeliveredAt     *time.Time              `bson:"delivered_at,omitempty"`
	CreatedAt       time.Time               `bson:"created_at"`
	UpdatedAt       time.Time               `bson:"updated_at"`
}

type OrderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Image     string  `bson:"image"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

type ShippingAddressDocument struct {
	Address    string `bson:"address"`
	City       string `bson:"city"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
}

type PaymentResultDocument struct {
	PaymentID    string `bson:"payment_id"`
	Status       string `bson:"status"`
	UpdateTime   string `bson:"update_time"`
	EmailAddress string `bson:"email_address"`
}

func toUserDocument(user *entities.User) *UserDocument {
	return &UserDocument{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		GoogleID:  user.GoogleID,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserEntity(doc *UserDocument) *entities.User {
	return &entities.User{
		ID:        doc.UserID,
		Username:  doc.Username,
		Email:     doc.Email,
		Password:  doc.Password,
		GoogleID:  doc.GoogleID,
		IsAdmin:   doc.IsAdmin,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func toCategoryDocument(category *entities.Category) *CategoryDocument {
	return &CategoryDocument{
		CategoryID: category.ID,
		Name:       category.Name,
	}
}

func toCategoryEntity(doc *CategoryDocument) *entities.Category {
	return &entities.Category{
		ID:   doc.CategoryID,
		Name: doc.Name,
	}
}

func toProductDocument(product *entities.Product) *ProductDocument {
	doc := &ProductDocument{
		ProductID:    product.ID,
		Name:         product.Name,
		Image:        product.Image,
		Brand:        product.Brand,
		Quantity:     product.Quantity,
		CategoryID:   product.CategoryID,
		Description:  product.Description,
		Rating:       product.Rating,
		NumReviews:   product.NumReviews,
		Reviews:      make([]ReviewDocument, len(product.Reviews)),
		Price:        product.Price,
		CountInStock: product.CountInStock,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}

	for i, review := range product.Reviews {
		doc.Reviews[i] = ReviewDocument{
			ReviewID:  review.ID,
			Name:      review.Name,
			Rating:    review.Rating,
			Comment:   review.Comment,
			UserID:    review.UserID,
			CreatedAt: review.CreatedAt,
		}
	}

	return doc
}

func toProductEntity(doc *ProductDocument) *entities.Product {
	reviews := make([]entities.Review, len(doc.Reviews))
	for i, review := range doc.Reviews {
		reviews[i] = entities.Review{
			ID:        review.ReviewID,
			Name:      review.Name,
			Rating:    review.Rating,
			Comment:   review.Comment,
			UserID:    review.UserID,
			CreatedAt: review.CreatedAt,
		}
	}

	return &entities.Product{
		ID:           doc.ProductID,
		Name:         doc.Name,
		Image:        doc.Image,
		Brand:        doc.Brand,
		Quantity:     doc.Quantity,
		CategoryID:   doc.CategoryID,
		Description:  doc.Description,
		Rating:       doc.Rating,
		NumReviews:   doc.NumReviews,
		Reviews:      reviews,
		Price:        doc.Price,
		CountInStock: doc.CountInStock,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func toOrderDocument(order *entities.Order) *OrderDocument {
	doc := &OrderDocument{
		OrderID: order.ID,
		UserID:  order.UserID,
		Items:   make([]OrderItemDocument, len(order.Items)),
		ShippingAddress: ShippingAddressDocument{
			Address:    order.ShippingAddress.Address,
			City:       order.ShippingAddress.City,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
		PaymentMethod: order.PaymentMethod,
		ItemsPrice:    order.ItemsPrice,
		ShippingPrice: order.ShippingPrice,
		TaxPrice:      order.TaxPrice,
		TotalPrice:    order.TotalPrice,
		IsPaid:        order.IsPaid,
		PaidAt:        order.PaidAt,
		IsDelivered:   order.IsDelivered,
		DeliveredAt:   order.DeliveredAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	for i, item := range order.Items {
		doc.Items[i] = OrderItemDocument{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	if order.PaymentResult != nil {
		doc.PaymentResult = &PaymentResultDocument{
			PaymentID:    order.PaymentResult.ID,
			Status:       order.PaymentResult.Status,
			UpdateTime:   order.PaymentResult.UpdateTime,
			EmailAddress: order.PaymentResult.EmailAddress,
		}
	}

	return doc
}

func toOrderEntity(doc *OrderDocument) *entities.Order {
	items := make([]entities.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	order := &entities.Order{
		ID:     doc.OrderID,
		UserID: doc.UserID,
		Items:  items,
		ShippingAddress: entities.ShippingAddress{
			Address:    doc.ShippingAddress.Address,
			City:       doc.ShippingAddress.City,
			PostalCode: doc.ShippingAddress.PostalCode,
			Country:    doc.ShippingAddress.Country,
		},
		PaymentMethod: doc.PaymentMethod,
		ItemsPrice:    doc.ItemsPrice,
		ShippingPrice: doc.ShippingPrice,
		TaxPrice:      doc.TaxPrice,
		TotalPrice:    doc.TotalPrice,
		IsPaid:        doc.IsPaid,
		PaidAt:        doc.PaidAt,
		IsDelivered:   doc.IsDelivered,
		DeliveredAt:   doc.DeliveredAt,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}

	if doc.PaymentResult != nil {
		order.PaymentResult = &entities.PaymentResult{
			ID:           doc.PaymentResult.PaymentID,
			Status:       doc.PaymentResult.Status,
			UpdateTime:   doc.PaymentResult.UpdateTime,
			EmailAddress: doc.PaymentResult.EmailAddress,
		}
	}

	return order
}
