package models

// MedicalRecord: satu record per pasien, di-key pakai nama pasien.
// Catatan: keying pakai nama memang rapuh kalau ada nama kembar,
// tapi seluruh pencocokan lintas koleksi di sistem ini memakai nama,
// jadi dipertahankan apa adanya.
// Record HANYA berubah sebagai efek samping dari appointment yang
// diselesaikan dokter: catatan konsultasi di-append ke Conditions
// dan LastVisit di-set ke tanggal appointment.
type MedicalRecord struct {
	Patient    string `json:"patient"`
	Age        int    `json:"age"`
	BloodType  string `json:"bloodType"`
	Allergies  string `json:"allergies"`
	Conditions string `json:"conditions"`
	LastVisit  string `json:"lastVisit"` // Format YYYY-MM-DD
}

// LabReport: data referensi read-only, tidak punya lifecycle.
// Hanya di-filter per role di query layer.
type LabReport struct {
	ID      int    `json:"id"`
	Patient string `json:"patient"`
	Test    string `json:"test"`
	Date    string `json:"date"`
	Result  string `json:"result"`
	Status  string `json:"status"`
}
