package memory

// Cascadas equivalentes a las ON DELETE del esquema SQL. Se llaman después de
// borrar la fila padre, con el estado bloqueado.

func cascadeUser(st *state, id int64) {
	for bid, b := range st.buyers {
		if b.UserID == id {
			delete(st.buyers, bid)
			cascadeBuyer(st, bid)
		}
	}
	for sid, s := range st.sellers {
		if s.UserID == id {
			delete(st.sellers, sid)
			cascadeSeller(st, sid)
		}
	}
}

func cascadeBuyer(st *state, id int64) {
	for lid, l := range st.cart {
		if l.BuyerID == id {
			delete(st.cart, lid)
		}
	}
}

// las tiendas quedan sin vendedor (SET NULL)
func cascadeSeller(st *state, id int64) {
	for sid, s := range st.stores {
		if s.SellerID != nil && *s.SellerID == id {
			s.SellerID = nil
			st.stores[sid] = s
		}
	}
}

// los productos quedan sin categoría (SET NULL)
func cascadeCategory(st *state, id int64) {
	for pid, p := range st.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			st.products[pid] = p
		}
	}
}

func cascadeStore(st *state, id int64) {
	for pid, p := range st.products {
		if p.StoreID == id {
			delete(st.products, pid)
			cascadeProduct(st, pid)
		}
	}
}

func cascadeProduct(st *state, id int64) {
	for lid, l := range st.cart {
		if l.ProductID == id {
			delete(st.cart, lid)
		}
	}
}
