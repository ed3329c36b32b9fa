package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	burgerapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/burger"
	customerapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/customer"
	ingredientapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/ingredient"
	orderapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/pricing"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

// webListLimit caps the rows a list page pulls in one query.
const webListLimit = 100

// WebHandler renders the server-side pages. Forms redirect with 303 See
// Other on success; a domain violation re-renders the form with the
// submitted values and an inline error at status 400.
type WebHandler struct {
	customers   *customerapp.Service
	burgers     *burgerapp.Service
	orders      *orderapp.Service
	ingredients *ingredientapp.Service
	log         logger.Logger
}

func NewWebHandler(
	customers *customerapp.Service,
	burgers *burgerapp.Service,
	orders *orderapp.Service,
	ingredients *ingredientapp.Service,
	log logger.Logger,
) *WebHandler {
	return &WebHandler{customers: customers, burgers: burgers, orders: orders, ingredients: ingredients, log: log}
}

func (h *WebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{"Title": "Home"})
}

// formStatus maps an error onto the status and message the re-rendered form
// carries: domain violations keep their message, everything else is logged
// and replaced with a generic one.
func (h *WebHandler) formStatus(c *gin.Context, err error) (int, string) {
	if apperr.IsConflict(err) {
		return http.StatusBadRequest, err.Error()
	}
	h.log.Error("page request failed", logger.Error(err), logger.String("path", c.FullPath()))
	return http.StatusInternalServerError, "An unexpected error occurred."
}

// --- customer pages ---

func (h *WebHandler) CustomerList(c *gin.Context) {
	customers, err := h.customers.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "customer_list", gin.H{
		"Title":     "Customers",
		"Customers": customers,
		"Error":     deleteFailedMessage(c, "customer"),
	})
}

func (h *WebHandler) CustomerNewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_form", gin.H{
		"Title":    "New Customer",
		"EditMode": false,
		"Name":     "",
		"Phone":    "",
	})
}

func (h *WebHandler) CustomerCreate(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")

	render := func(status int, msg string) {
		c.HTML(status, "customer_form", gin.H{
			"Title":    "New Customer",
			"EditMode": false,
			"Name":     name,
			"Phone":    phone,
			"Error":    msg,
		})
	}

	if _, err := h.customers.Create(c.Request.Context(), customerapp.CreateCustomerCommand{Name: name, Phone: phone}); err != nil {
		status, msg := h.formStatus(c, err)
		render(status, msg)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

func (h *WebHandler) CustomerEditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.customers.FindByID(c.Request.Context(), id)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	if found == nil {
		c.HTML(http.StatusNotFound, "index", gin.H{"Title": "Not Found", "Error": "Customer not found"})
		return
	}
	c.HTML(http.StatusOK, "customer_form", gin.H{
		"Title":    "Edit Customer: " + found.Name,
		"EditMode": true,
		"ID":       found.ID,
		"Name":     found.Name,
		"Phone":    found.Phone,
	})
}

func (h *WebHandler) CustomerUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	name := c.PostForm("name")
	phone := c.PostForm("phone")

	render := func(status int, msg string) {
		c.HTML(status, "customer_form", gin.H{
			"Title":    "Edit Customer: " + name,
			"EditMode": true,
			"ID":       id,
			"Name":     name,
			"Phone":    phone,
			"Error":    msg,
		})
	}

	updated, err := h.customers.Update(c.Request.Context(), id, customerapp.UpdateCustomerCommand{Name: &name, Phone: &phone})
	if err != nil {
		status, msg := h.formStatus(c, err)
		render(status, msg)
		return
	}
	if updated == nil {
		c.HTML(http.StatusNotFound, "index", gin.H{"Title": "Not Found", "Error": "Customer not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

func (h *WebHandler) CustomerDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("delete customer from page", logger.Int64("customer_id", id), logger.Error(err))
		c.Redirect(http.StatusSeeOther, "/customers?error=delete_failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

// --- burger pages ---

func (h *WebHandler) BurgerList(c *gin.Context) {
	burgers, err := h.burgers.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "burger_list", gin.H{
		"Title":   "Burgers",
		"Burgers": burgers,
		"Error":   deleteFailedMessage(c, "burger"),
	})
}

func (h *WebHandler) BurgerNewForm(c *gin.Context) {
	catalog, err := h.ingredients.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "burger_form", gin.H{
		"Title":       "New Burger",
		"EditMode":    false,
		"Name":        "",
		"Description": "",
		"Price":       "",
		"Ingredients": catalog,
		"Quantities":  map[int64]int{},
	})
}

func (h *WebHandler) BurgerCreate(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	priceRaw := c.PostForm("price")
	quantities := ingredientQuantities(c)

	render := func(status int, msg string) {
		catalog, err := h.ingredients.FindAll(c.Request.Context(), 0, webListLimit)
		if err != nil {
			h.renderPageError(c, err)
			return
		}
		c.HTML(status, "burger_form", gin.H{
			"Title":       "New Burger",
			"EditMode":    false,
			"Name":        name,
			"Description": description,
			"Price":       priceRaw,
			"Ingredients": catalog,
			"Quantities":  quantities,
			"Error":       msg,
		})
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		render(http.StatusBadRequest, "Price must be a number.")
		return
	}

	cmd := burgerapp.CreateBurgerCommand{
		Name:          name,
		Description:   description,
		Price:         price,
		IngredientIDs: expandQuantities(quantities),
	}
	if _, err := h.burgers.Create(c.Request.Context(), cmd); err != nil {
		status, msg := h.formStatus(c, err)
		render(status, msg)
		return
	}
	c.Redirect(http.StatusSeeOther, "/burgers")
}

func (h *WebHandler) BurgerEditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.burgers.FindByID(c.Request.Context(), id)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	if found == nil {
		c.HTML(http.StatusNotFound, "index", gin.H{"Title": "Not Found", "Error": "Burger not found"})
		return
	}
	catalog, err := h.ingredients.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		h.renderPageError(c, err)
		return
	}

	quantities := make(map[int64]int, len(found.Ingredients))
	for _, line := range found.Ingredients {
		quantities[line.IngredientID] = line.Quantity
	}

	c.HTML(http.StatusOK, "burger_form", gin.H{
		"Title":       "Edit Burger: " + found.Name,
		"EditMode":    true,
		"ID":          found.ID,
		"Name":        found.Name,
		"Description": found.Description,
		"Price":       strconv.FormatFloat(found.Price, 'f', -1, 64),
		"Ingredients": catalog,
		"Quantities":  quantities,
	})
}

func (h *WebHandler) BurgerUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	name := c.PostForm("name")
	description := c.PostForm("description")
	priceRaw := c.PostForm("price")
	quantities := ingredientQuantities(c)

	render := func(status int, msg string) {
		catalog, err := h.ingredients.FindAll(c.Request.Context(), 0, webListLimit)
		if err != nil {
			h.renderPageError(c, err)
			return
		}
		c.HTML(status, "burger_form", gin.H{
			"Title":       "Edit Burger: " + name,
			"EditMode":    true,
			"ID":          id,
			"Name":        name,
			"Description": description,
			"Price":       priceRaw,
			"Ingredients": catalog,
			"Quantities":  quantities,
			"Error":       msg,
		})
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		render(http.StatusBadRequest, "Price must be a number.")
		return
	}

	ids := expandQuantities(quantities)
	cmd := burgerapp.UpdateBurgerCommand{
		Name:          &name,
		Description:   &description,
		Price:         &price,
		IngredientIDs: &ids,
	}
	updated, err := h.burgers.Update(c.Request.Context(), id, cmd)
	if err != nil {
		status, msg := h.formStatus(c, err)
		render(status, msg)
		return
	}
	if updated == nil {
		c.HTML(http.StatusNotFound, "index", gin.H{"Title": "Not Found", "Error": "Burger not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/burgers")
}

func (h *WebHandler) BurgerDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.burgers.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("delete burger from page", logger.Int64("burger_id", id), logger.Error(err))
		c.Redirect(http.StatusSeeOther, "/burgers?error=delete_failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/burgers")
}

// --- order pages ---

// orderRow pairs an order with the total the list page shows.
type orderRow struct {
	Order *order.Order
	Total float64
}

func (h *WebHandler) OrderList(c *gin.Context) {
	orders, err := h.orders.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{Order: o, Total: pricing.Total(o.Burgers)})
	}
	c.HTML(http.StatusOK, "order_list", gin.H{
		"Title":  "Orders",
		"Orders": rows,
		"Error":  deleteFailedMessage(c, "order"),
	})
}

func (h *WebHandler) OrderNewForm(c *gin.Context) {
	customers, burgers, err := h.orderFormChoices(c)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	data := gin.H{
		"Title":      "New Order",
		"EditMode":   false,
		"Customers":  customers,
		"Burgers":    burgers,
		"Statuses":   order.Statuses(),
		"CustomerID": int64(0),
		"Status":     string(order.StatusPending),
		"Quantities": map[int64]int{},
	}
	if len(customers) == 0 {
		data["Error"] = "No customers available. Please create a customer first."
	}
	c.HTML(http.StatusOK, "order_form", data)
}

func (h *WebHandler) OrderCreate(c *gin.Context) {
	customerID, _ := strconv.ParseInt(c.PostForm("customer_id"), 10, 64)
	status := c.PostForm("status")
	quantities, items := orderItems(c)

	render := func(code int, msg string) {
		customers, burgers, err := h.orderFormChoices(c)
		if err != nil {
			h.renderPageError(c, err)
			return
		}
		c.HTML(code, "order_form", gin.H{
			"Title":      "New Order",
			"EditMode":   false,
			"Customers":  customers,
			"Burgers":    burgers,
			"Statuses":   order.Statuses(),
			"CustomerID": customerID,
			"Status":     status,
			"Quantities": quantities,
			"Error":      msg,
		})
	}

	created, err := h.orders.Create(c.Request.Context(), orderapp.CreateOrderCommand{CustomerID: customerID, Items: items})
	if err != nil {
		code, msg := h.formStatus(c, err)
		render(code, msg)
		return
	}

	// The form may pick a non-default status; orders are always created
	// pending, so apply it as a follow-up update.
	if status != "" && status != string(order.StatusPending) {
		if _, err := h.orders.Update(c.Request.Context(), created.ID, orderapp.UpdateOrderCommand{Status: &status}); err != nil {
			code, msg := h.formStatus(c, err)
			render(code, msg)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/orders")
}

func (h *WebHandler) OrderEditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.orders.FindByID(c.Request.Context(), id)
	if err != nil {
		h.renderPageError(c, err)
		return
	}
	if found == nil {
		c.HTML(http.StatusNotFound, "index", gin.H{"Title": "Not Found", "Error": "Order not found"})
		return
	}
	customers, burgers, err := h.orderFormChoices(c)
	if err != nil {
		h.renderPageError(c, err)
		return
	}

	quantities := make(map[int64]int, len(found.Burgers))
	for _, line := range found.Burgers {
		quantities[line.BurgerID] = line.Quantity
	}

	c.HTML(http.StatusOK, "order_form", gin.H{
		"Title":      "Edit Order #" + strconv.FormatInt(found.ID, 10),
		"EditMode":   true,
		"ID":         found.ID,
		"Customers":  customers,
		"Burgers":    burgers,
		"Statuses":   order.Statuses(),
		"CustomerID": found.CustomerID,
		"Status":     string(found.Status),
		"Quantities": quantities,
	})
}

func (h *WebHandler) OrderUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	customerID, _ := strconv.ParseInt(c.PostForm("customer_id"), 10, 64)
	status := c.PostForm("status")
	quantities, items := orderItems(c)

	render := func(code int, msg string) {
		customers, burgers, err := h.orderFormChoices(c)
		if err != nil {
			h.renderPageError(c, err)
			return
		}
		c.HTML(code, "order_form", gin.H{
			"Title":      "Edit Order #" + strconv.FormatInt(id, 10),
			"EditMode":   true,
			"ID":         id,
			"Customers":  customers,
			"Burgers":    burgers,
			"Statuses":   order.Statuses(),
			"CustomerID": customerID,
			"Status":     status,
			"Quantities": quantities,
			"Error":      msg,
		})
	}

	cmd := orderapp.UpdateOrderCommand{CustomerID: &customerID, Status: &status, Items: &items}
	updated, err := h.orders.Update(c.Request.Context(), id, cmd)
	if err != nil {
		code, msg := h.formStatus(c, err)
		render(code, msg)
		return
	}
	if updated == nil {
		c.HTML(http.StatusNotFound, "index", gin.H{"Title": "Not Found", "Error": "Order not found"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/orders")
}

func (h *WebHandler) OrderDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("delete order from page", logger.Int64("order_id", id), logger.Error(err))
		c.Redirect(http.StatusSeeOther, "/orders?error=delete_failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/orders")
}

// --- helpers ---

func (h *WebHandler) renderPageError(c *gin.Context, err error) {
	h.log.Error("page request failed", logger.Error(err), logger.String("path", c.FullPath()))
	c.HTML(http.StatusInternalServerError, "index", gin.H{
		"Title": "Error",
		"Error": "An unexpected error occurred.",
	})
}

func (h *WebHandler) orderFormChoices(c *gin.Context) ([]*customer.Customer, []*burger.Burger, error) {
	customers, err := h.customers.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		return nil, nil, err
	}
	burgers, err := h.burgers.FindAll(c.Request.Context(), 0, webListLimit)
	if err != nil {
		return nil, nil, err
	}
	return customers, burgers, nil
}

// deleteFailedMessage turns the ?error=delete_failed redirect marker into
// the banner the list page shows.
func deleteFailedMessage(c *gin.Context, resource string) string {
	if c.Query("error") == "delete_failed" {
		return "Could not delete the " + resource + "; it may still be referenced by existing records."
	}
	return ""
}

// ingredientQuantities reads the burger form's per-ingredient quantity
// inputs (ingredient_<id>) into an id → quantity map, dropping zero rows.
func ingredientQuantities(c *gin.Context) map[int64]int {
	quantities := map[int64]int{}
	if c.Request == nil {
		return quantities
	}
	if err := c.Request.ParseForm(); err != nil {
		return quantities
	}
	for key, values := range c.Request.PostForm {
		if !strings.HasPrefix(key, "ingredient_") || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(key, "ingredient_"), 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(values[0])
		if err != nil || qty <= 0 {
			continue
		}
		quantities[id] = qty
	}
	return quantities
}

// expandQuantities converts the quantity map into the repeated-id list the
// burger service accepts.
func expandQuantities(quantities map[int64]int) []int64 {
	ids := make([]int64, 0, len(quantities))
	for id, qty := range quantities {
		for i := 0; i < qty; i++ {
			ids = append(ids, id)
		}
	}
	return ids
}

// orderItems reads the order form's parallel item_burger_ids and
// item_quantities arrays, keeping rows with a positive quantity.
func orderItems(c *gin.Context) (map[int64]int, []orderapp.OrderItemRef) {
	burgerIDs := c.PostFormArray("item_burger_ids")
	rawQuantities := c.PostFormArray("item_quantities")

	quantities := map[int64]int{}
	items := make([]orderapp.OrderItemRef, 0, len(burgerIDs))
	for i, rawID := range burgerIDs {
		if i >= len(rawQuantities) {
			break
		}
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(rawQuantities[i])
		if err != nil || qty <= 0 {
			continue
		}
		quantities[id] += qty
		items = append(items, orderapp.OrderItemRef{BurgerID: id, Quantity: qty})
	}
	return quantities, items
}
