package i18n

var translationsFr = Translations{
	// Auth
	"auth.login_required":      "Connexion requise",
	"auth.invalid_credentials": "Email ou mot de passe incorrect",
	"auth.token_expired":       "Votre session a expiré, veuillez vous reconnecter",
	"auth.token_invalid":       "Jeton d'authentification invalide",
	"auth.email_exists":        "Cet email est déjà utilisé",
	"auth.forbidden":           "Accès non autorisé",
	"auth.admin_only":          "Réservé aux administrateurs",

	// Validation
	"validation.invalid_input":  "Les données fournies sont invalides",
	"validation.invalid_id":     "Identifiant invalide",
	"validation.required":       "Veuillez remplir tous les champs requis",
	"validation.invalid_wilaya": "Wilaya invalide",
	"validation.invalid_phone":  "Numéro de téléphone invalide",

	// Catalog
	"product.not_found": "Produit introuvable",
	"product.inactive":  "Ce produit n'est plus disponible",

	// Cart
	"cart.empty":           "Le panier est vide",
	"cart.item_not_found":  "Article introuvable dans le panier",
	"cart.missing_product": "Référence produit manquante",

	// Orders
	"order.not_found":      "Commande introuvable",
	"order.created":        "Votre commande a été envoyée avec succès!",
	"order.invalid_status": "Statut de commande invalide",
	"order.failed":         "Une erreur est survenue lors de l'envoi de la commande",

	// Upload
	"upload.invalid_type": "Type de fichier non supporté",
	"upload.failed":       "Échec du téléversement",

	// Generic
	"internal.error": "Une erreur est survenue. Veuillez réessayer plus tard",
}

var translationsAr = Translations{
	// Auth
	"auth.login_required":      "تسجيل الدخول مطلوب",
	"auth.invalid_credentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
	"auth.token_expired":       "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مجدداً",
	"auth.token_invalid":       "رمز المصادقة غير صالح",
	"auth.email_exists":        "هذا البريد الإلكتروني مستخدم بالفعل",
	"auth.forbidden":           "الوصول غير مسموح",
	"auth.admin_only":          "خاص بالمشرفين فقط",

	// Validation
	"validation.invalid_input":  "البيانات المدخلة غير صالحة",
	"validation.invalid_id":     "معرّف غير صالح",
	"validation.required":       "يرجى ملء جميع الحقول المطلوبة",
	"validation.invalid_wilaya": "ولاية غير صالحة",
	"validation.invalid_phone":  "رقم الهاتف غير صالح",

	// Catalog
	"product.not_found": "المنتج غير موجود",
	"product.inactive":  "هذا المنتج لم يعد متوفراً",

	// Cart
	"cart.empty":           "السلة فارغة",
	"cart.item_not_found":  "العنصر غير موجود في السلة",
	"cart.missing_product": "مرجع المنتج مفقود",

	// Orders
	"order.not_found":      "الطلب غير موجود",
	"order.created":        "تم إرسال طلبك بنجاح!",
	"order.invalid_status": "حالة الطلب غير صالحة",
	"order.failed":         "حدث خطأ أثناء إرسال الطلب",

	// Upload
	"upload.invalid_type": "نوع الملف غير مدعوم",
	"upload.failed":       "فشل رفع الملف",

	// Generic
	"internal.error": "حدث خطأ، يرجى المحاولة لاحقاً",
}
