// Package catalog holds the immutable reference data of the institution:
// directories, notices, gallery albums, the subject seed list and the
// fallback inspiration content. Nothing in here is mutated at runtime.
package catalog

import "github.com/madinatul-uloom/madrasah-admin-api/internal/models"

// Institution is the contact block shown across the public site.
var Institution = models.InstitutionInfo{
	Name: models.LocalizedText{
		En: "Madrasah Madinatul Uloom",
		Bn: "মাদ্রাসা মদিনাতুল উলূম",
	},
	Address: models.LocalizedText{
		En: "Village: Arampur, Gosaba, South 24 Parganas, West Bengal, India. PIN: 743370",
		Bn: "গ্রাম: আরামপুর, গোসাবা, দক্ষিণ ২৪ পরগনা, পশ্চিমবঙ্গ, ভারত। পিন: ৭৪৩৩৭০",
	},
	Phone:    "+91 7679116671",
	WhatsApp: "https://wa.me/917679116671",
	Email:    "kcmcentre0@gmail.com",
}

// Teachers is the public teacher directory.
var Teachers = []models.TeacherProfile{
	{
		ID:            1,
		Name:          "Maulana Belal Uddin Mondal",
		Designation:   models.LocalizedText{En: "Muhtamim (Head of Institution)", Bn: "মুহতামিম (প্রতিষ্ঠান প্রধান)"},
		Qualification: models.LocalizedText{En: "M.A. in Arabic, Certified Islamic Scholar", Bn: "এম.এ. আরবি, প্রত্যয়িত ইসলামী পণ্ডিত"},
		Description:   models.LocalizedText{En: "Founder and Head of Madrasah, teaches Tafsir, Hadith, and Arabic grammar.", Bn: "মাদ্রাসার প্রতিষ্ঠাতা ও প্রধান, তাফসীর, হাদীস এবং আরবি ব্যাকরণ পড়ান।"},
	},
	{
		ID:            2,
		Name:          "Hafiz Maulana Sahabuddin Mondal",
		Designation:   models.LocalizedText{En: "President", Bn: "সভাপতি"},
		Qualification: models.LocalizedText{En: "Mufti, Darul Uloom Graduate", Bn: "মুফতি, দারুল উলূম স্নাতক"},
		Description:   models.LocalizedText{En: "Supervises all administrative and educational activities.", Bn: "সমস্ত প্রশাসনিক ও শিক্ষাগত কার্যক্রম তত্ত্বাবধান করেন।"},
	},
	{
		ID:            3,
		Name:          "Maulana Mohammad Sekh",
		Designation:   models.LocalizedText{En: "Senior Teacher", Bn: "সিনিয়র শিক্ষক"},
		Qualification: models.LocalizedText{En: "M.A. in Arabic Literature", Bn: "এম.এ. আরবি সাহিত্য"},
		Description:   models.LocalizedText{En: "Specializes in Fiqh and Balagha.", Bn: "ফিকহ ও বালাগাতে বিশেষজ্ঞ।"},
	},
	{
		ID:            4,
		Name:          "Maulana Joynal Sekh",
		Designation:   models.LocalizedText{En: "Teacher", Bn: "শিক্ষক"},
		Qualification: models.LocalizedText{En: "Alim, Fazil", Bn: "আলিম, ফাজিল"},
		Description:   models.LocalizedText{En: "Teaches Arabic and Islamic Studies.", Bn: "আরবি এবং ইসলামিক স্টাডিজ পড়ান।"},
	},
	{
		ID:            5,
		Name:          "Hafiz Joynal Abedin",
		Designation:   models.LocalizedText{En: "Teacher", Bn: "শিক্ষক"},
		Qualification: models.LocalizedText{En: "Hafiz-e-Qur'an", Bn: "হাফিজ-ই-কুরআন"},
		Description:   models.LocalizedText{En: "Teaches Hifz and Tajweed.", Bn: "হিফজ ও তাজবীদ পড়ান।"},
	},
	{
		ID:            6,
		Name:          "Maulana Rehsan Ali Saheb",
		Designation:   models.LocalizedText{En: "Teacher", Bn: "শিক্ষক"},
		Qualification: models.LocalizedText{En: "Alim", Bn: "আলিম"},
		Description:   models.LocalizedText{En: "Teaches basic Arabic, Hadith, and Akhlaq.", Bn: "মৌলিক আরবি, হাদীস এবং আখলাক পড়ান।"},
	},
	{
		ID:            7,
		Name:          "Ustadh Hafiz Saiful Sheikh",
		Designation:   models.LocalizedText{En: "Qur'an Teacher", Bn: "কুরআন শিক্ষক"},
		Qualification: models.LocalizedText{En: "Hafiz-e-Qur'an", Bn: "হাফিজ-ই-কুরআন"},
		Description:   models.LocalizedText{En: "Dedicated teacher of Hifz section, trains students in correct recitation (Tajweed) and memorization.", Bn: "হিফজ বিভাগের নিবেদিত শিক্ষক, ছাত্রদের সঠিক তেলাওয়াত (তাজবীদ) এবং মুখস্থে প্রশিক্ষণ দেন।"},
	},
}

// Staff is the public staff directory.
var Staff = []models.StaffMember{
	{ID: 1, Name: "Kowsar Sekh", Role: models.LocalizedText{En: "Office Administrator", Bn: "অফিস প্রশাসক"}},
	{ID: 2, Name: "Esar Ali Sekh", Role: models.LocalizedText{En: "Hostel Incharge", Bn: "হোস্টেল ইনচার্জ"}},
	{ID: 3, Name: "Joygun Laskar", Role: models.LocalizedText{En: "Cook", Bn: "বাবুর্চি"}},
	{ID: 4, Name: "Chabed Molla", Role: models.LocalizedText{En: "Maintenance & Security", Bn: "রক্ষণাবেক্ষণ ও নিরাপত্তা"}},
	{ID: 5, Name: "Monajat Laskar", Role: models.LocalizedText{En: "Assistant Worker", Bn: "সহকারী কর্মী"}},
	{ID: 6, Name: "Khoter Molla", Role: models.LocalizedText{En: "Staff Member", Bn: "কর্মী"}},
}

// Notices is the public notice board.
var Notices = []models.Notice{
	{ID: 1, Text: models.LocalizedText{En: "Annual exams will commence from December 15th, 2025. All students are advised to prepare well.", Bn: "বার্ষিক পরীক্ষা ১৫ই ডিসেম্বর, ২০২৫ থেকে শুরু হবে। সকল ছাত্রকে ভালোভাবে প্রস্তুতি নেওয়ার পরামর্শ দেওয়া হচ্ছে।"}},
	{ID: 2, Text: models.LocalizedText{En: "The Madrasah will remain closed for Eid-ul-Adha from 10th to 15th of Dhul Hijjah.", Bn: "ঈদুল আযহা উপলক্ষে মাদ্রাসা যুল হিজ্জার ১০ থেকে ১৫ তারিখ পর্যন্ত বন্ধ থাকবে।"}},
	{ID: 3, Text: models.LocalizedText{En: "Admission for the new academic year is now open. Contact the office for more details.", Bn: "নতুন শিক্ষাবর্ষের জন্য ভর্তি চলছে। আরও তথ্যের জন্য অফিসে যোগাযোগ করুন।"}},
}

// Gallery is the public photo gallery.
var Gallery = []models.GalleryImage{
	{ID: 1, Album: models.LocalizedText{En: "Annual Function", Bn: "বার্ষিক অনুষ্ঠান"}, Src: "https://picsum.photos/800/600?random=1", Caption: models.LocalizedText{En: "Students performing at the annual event.", Bn: "বার্ষিক অনুষ্ঠানে ছাত্ররা পরিবেশন করছে।"}, Date: "2025-03-20"},
	{ID: 2, Album: models.LocalizedText{En: "Hifz Ceremony", Bn: "হিফজ অনুষ্ঠান"}, Src: "https://picsum.photos/800/600?random=2", Caption: models.LocalizedText{En: "Graduating Huffaz receiving their certificates.", Bn: "স্নাতক হাফেজরা তাদের সনদ গ্রহণ করছে।"}, Date: "2025-05-10"},
	{ID: 3, Album: models.LocalizedText{En: "Student Life", Bn: "ছাত্র জীবন"}, Src: "https://picsum.photos/800/600?random=3", Caption: models.LocalizedText{En: "Students in the library.", Bn: "লাইব্রেরিতে ছাত্ররা।"}, Date: "2025-02-15"},
	{ID: 4, Album: models.LocalizedText{En: "Campus View", Bn: "ক্যাম্পাসের দৃশ্য"}, Src: "https://picsum.photos/800/600?random=4", Caption: models.LocalizedText{En: "A serene view of the Madrasah grounds.", Bn: "মাদ্রাসার মাঠের একটি নির্মল দৃশ্য।"}, Date: "2025-01-01"},
	{ID: 5, Album: models.LocalizedText{En: "Annual Function", Bn: "বার্ষিক অনুষ্ঠান"}, Src: "https://picsum.photos/800/600?random=5", Caption: models.LocalizedText{En: "Guest speaker addressing the audience.", Bn: "অতিথি বক্তা দর্শকদের উদ্দেশে ভাষণ দিচ্ছেন।"}, Date: "2025-03-20"},
	{ID: 6, Album: models.LocalizedText{En: "Student Life", Bn: "ছাত্র জীবন"}, Src: "https://picsum.photos/800/600?random=6", Caption: models.LocalizedText{En: "Daily assembly.", Bn: "দৈনিক সমাবেশ।"}, Date: "2025-04-05"},
}

// SeedSubjects populates the subjects table on first run.
var SeedSubjects = []models.Subject{
	{ID: "sub1", Name: models.LocalizedText{En: "Qur'an", Bn: "কুরআন"}},
	{ID: "sub2", Name: models.LocalizedText{En: "Hadith", Bn: "হাদিস"}},
	{ID: "sub3", Name: models.LocalizedText{En: "Fiqh", Bn: "ফিকহ"}},
	{ID: "sub4", Name: models.LocalizedText{En: "Arabic Grammar", Bn: "আরবি ব্যাকরণ"}},
	{ID: "sub5", Name: models.LocalizedText{En: "English", Bn: "ইংরেজি"}},
	{ID: "sub6", Name: models.LocalizedText{En: "Mathematics", Bn: "গণিত"}},
}

// FallbackInspiration replaces the provider response whenever the fetch
// fails or times out.
var FallbackInspiration = models.DailyInspiration{
	Verse: models.Verse{
		Arabic:    "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا",
		English:   "For indeed, with hardship [will be] ease.",
		Bengali:   "নিশ্চয়ই কষ্টের সাথে স্বস্তি রয়েছে।",
		Reference: "Qur'an 94:5",
	},
	Dua: models.Dua{
		Arabic:  "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً وَفِي الْآخِرَةِ حَسَنَةً وَقِنَا عَذَابَ النَّارِ",
		English: "Our Lord, give us in this world [that which is] good and in the Hereafter [that which is] good and protect us from the punishment of the Fire.",
		Bengali: "হে আমাদের প্রতিপালক, আমাদেরকে দুনিয়াতে কল্যাণ দান করুন এবং আখেরাতেও কল্যাণ দান করুন এবং আমাদেরকে আগুনের শাস্তি থেকে রক্ষা করুন।",
	},
}
